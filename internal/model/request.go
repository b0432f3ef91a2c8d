package model

// Kind identifies which PokeAPI resource a request targets.
type Kind string

const (
	// KindPokemon is the pokemon resource.
	KindPokemon Kind = "pokemon"
	// KindType is the type resource.
	KindType Kind = "type"
	// KindNature is the nature resource.
	KindNature Kind = "nature"
)

// String returns the resource path segment.
func (k Kind) String() string {
	return string(k)
}

// Request is one lookup built from the command line.
// It is one of PokemonRequest, TypeRequest or NatureRequest.
type Request interface {
	// Kind returns the resource the request looks up.
	Kind() Kind
	// Target returns the name to look up as given by the user.
	Target() string
}

// PokemonRequest asks for information about a Pokemon.
type PokemonRequest struct {
	Name        string
	ShowStats   bool
	ShowAbility bool
	// ShowBasic prints the "<name>\t(<types>)" line. The CLI sets it
	// unless --no-basic is given.
	ShowBasic bool
	// ShowAll forces ShowStats and ShowAbility.
	ShowAll bool
}

// Kind implements Request.
func (PokemonRequest) Kind() Kind { return KindPokemon }

// Target implements Request.
func (r PokemonRequest) Target() string { return r.Name }

// Normalize returns a copy of r with ShowAll applied.
func (r PokemonRequest) Normalize() PokemonRequest {
	if r.ShowAll {
		r.ShowStats = true
		r.ShowAbility = true
	}
	return r
}

// TypeRequest asks for the damage relations of a type, or with Compare,
// for the multiplier of a move of that type against a defending pairing.
type TypeRequest struct {
	Name        string
	ShowDefense bool
	ShowOffense bool
	Compare     bool
	// Primary and Secondary name the defending types when Compare is set.
	// The empty string means the argument is absent.
	Primary   string
	Secondary string
}

// Kind implements Request.
func (TypeRequest) Kind() Kind { return KindType }

// Target implements Request.
func (r TypeRequest) Target() string { return r.Name }

// HasPrimary reports whether a primary defending type was given.
func (r TypeRequest) HasPrimary() bool { return r.Primary != "" }

// HasSecondary reports whether a secondary defending type was given.
func (r TypeRequest) HasSecondary() bool { return r.Secondary != "" }

// NatureRequest asks for the stat changes of a nature.
type NatureRequest struct {
	Name string
}

// Kind implements Request.
func (NatureRequest) Kind() Kind { return KindNature }

// Target implements Request.
func (r NatureRequest) Target() string { return r.Name }
