package model

// Stat names as reported by PokeAPI.
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// BaseStats holds the six base stats of a Pokemon.
type BaseStats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Set assigns value to the stat identified by its PokeAPI name.
// It reports false when the name is not one of the six base stats.
func (s *BaseStats) Set(name string, value int) bool {
	switch name {
	case StatHP:
		s.HP = value
	case StatAttack:
		s.Attack = value
	case StatDefense:
		s.Defense = value
	case StatSpecialAttack:
		s.SpecialAttack = value
	case StatSpecialDefense:
		s.SpecialDefense = value
	case StatSpeed:
		s.Speed = value
	default:
		return false
	}
	return true
}

// Total returns the sum of all six base stats.
func (s BaseStats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// Pokemon is a resolved view of a PokeAPI pokemon record.
type Pokemon struct {
	// Name is the lower-case PokeAPI name (e.g. "pikachu").
	Name string `json:"name"`

	// Types lists the elemental type names in slot order.
	// A valid Pokemon always has one or two types.
	Types []string `json:"types"`

	// Stats are the base stats.
	Stats BaseStats `json:"stats"`

	// Abilities lists ability names in slot order, hidden abilities included.
	Abilities []string `json:"abilities"`
}

// IsDualType reports whether the Pokemon has two types.
func (p *Pokemon) IsDualType() bool {
	return len(p.Types) == 2
}

// DamageRelations holds the six damage relation sets of a type.
// A type absent from all three "from" sets takes normal damage.
type DamageRelations struct {
	NoDamageFrom     []string `json:"no_damage_from"`
	HalfDamageFrom   []string `json:"half_damage_from"`
	DoubleDamageFrom []string `json:"double_damage_from"`
	NoDamageTo       []string `json:"no_damage_to"`
	HalfDamageTo     []string `json:"half_damage_to"`
	DoubleDamageTo   []string `json:"double_damage_to"`
}

// Type is a resolved view of a PokeAPI type record.
type Type struct {
	Name      string          `json:"name"`
	Relations DamageRelations `json:"damage_relations"`
}

// Nature is a resolved view of a PokeAPI nature record.
// An empty DecreasedStat or IncreasedStat means the nature is neutral
// for that side.
type Nature struct {
	Name          string `json:"name"`
	DecreasedStat string `json:"decreased_stat,omitempty"`
	IncreasedStat string `json:"increased_stat,omitempty"`
}

// IsNeutral reports whether the nature changes no stat.
func (n *Nature) IsNeutral() bool {
	return n.DecreasedStat == "" && n.IncreasedStat == ""
}
