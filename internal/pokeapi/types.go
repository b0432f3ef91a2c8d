package pokeapi

import (
	"fmt"
	"slices"

	"github.com/nao1215/skyedex/internal/model"
)

// namedResource is PokeAPI's NamedAPIResource: a reference to another
// record by name and URL.
type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// pokemonType, pokemonStat and pokemonAbility are the list entries of a
// pokemon record.
type pokemonType struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     namedResource `json:"stat"`
}

type pokemonAbility struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  namedResource `json:"ability"`
}

// pokemonResponse is the subset of /pokemon/{name} that skyedex uses.
type pokemonResponse struct {
	Name      string           `json:"name"`
	Types     []pokemonType    `json:"types"`
	Stats     []pokemonStat    `json:"stats"`
	Abilities []pokemonAbility `json:"abilities"`
}

// toModel resolves the response into a model.Pokemon.
// Types and abilities are ordered by slot.
func (r *pokemonResponse) toModel() (*model.Pokemon, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("%w: pokemon without name", ErrMalformedResponse)
	}
	if len(r.Types) == 0 || len(r.Types) > 2 {
		return nil, fmt.Errorf("%w: pokemon %s has %d types", ErrMalformedResponse, r.Name, len(r.Types))
	}

	types := slices.Clone(r.Types)
	slices.SortStableFunc(types, func(a, b pokemonType) int { return a.Slot - b.Slot })
	abilities := slices.Clone(r.Abilities)
	slices.SortStableFunc(abilities, func(a, b pokemonAbility) int { return a.Slot - b.Slot })

	p := &model.Pokemon{
		Name:      r.Name,
		Types:     make([]string, 0, len(types)),
		Abilities: make([]string, 0, len(abilities)),
	}
	for _, t := range types {
		p.Types = append(p.Types, t.Type.Name)
	}
	for _, s := range r.Stats {
		// Unknown stats are ignored.
		p.Stats.Set(s.Stat.Name, s.BaseStat)
	}
	for _, a := range abilities {
		p.Abilities = append(p.Abilities, a.Ability.Name)
	}
	return p, nil
}

// typeResponse is the subset of /type/{name} that skyedex uses.
type typeResponse struct {
	Name            string `json:"name"`
	DamageRelations struct {
		NoDamageTo       []namedResource `json:"no_damage_to"`
		HalfDamageTo     []namedResource `json:"half_damage_to"`
		DoubleDamageTo   []namedResource `json:"double_damage_to"`
		NoDamageFrom     []namedResource `json:"no_damage_from"`
		HalfDamageFrom   []namedResource `json:"half_damage_from"`
		DoubleDamageFrom []namedResource `json:"double_damage_from"`
	} `json:"damage_relations"`
}

// toModel resolves the response into a model.Type.
func (r *typeResponse) toModel() (*model.Type, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("%w: type without name", ErrMalformedResponse)
	}
	dr := r.DamageRelations
	return &model.Type{
		Name: r.Name,
		Relations: model.DamageRelations{
			NoDamageFrom:     names(dr.NoDamageFrom),
			HalfDamageFrom:   names(dr.HalfDamageFrom),
			DoubleDamageFrom: names(dr.DoubleDamageFrom),
			NoDamageTo:       names(dr.NoDamageTo),
			HalfDamageTo:     names(dr.HalfDamageTo),
			DoubleDamageTo:   names(dr.DoubleDamageTo),
		},
	}, nil
}

// natureResponse is the subset of /nature/{name} that skyedex uses.
type natureResponse struct {
	Name          string         `json:"name"`
	DecreasedStat *namedResource `json:"decreased_stat"`
	IncreasedStat *namedResource `json:"increased_stat"`
}

// toModel resolves the response into a model.Nature.
func (r *natureResponse) toModel() (*model.Nature, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("%w: nature without name", ErrMalformedResponse)
	}
	n := &model.Nature{Name: r.Name}
	if r.DecreasedStat != nil {
		n.DecreasedStat = r.DecreasedStat.Name
	}
	if r.IncreasedStat != nil {
		n.IncreasedStat = r.IncreasedStat.Name
	}
	return n, nil
}

// names extracts the names of a list of references.
func names(refs []namedResource) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name
	}
	return out
}
