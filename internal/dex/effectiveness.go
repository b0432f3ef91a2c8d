package dex

import (
	"slices"

	"github.com/nao1215/skyedex/internal/model"
)

// Effectiveness returns how effective an attack of the attacking type is
// against the defending type.
//
// The defending type's "damage from" sets are scanned in the order
// no → half → double and the first set containing the attacking type's
// name decides the result. A type absent from all three takes normal damage.
func Effectiveness(defending, attacking *model.Type) model.Effectiveness {
	rel := defending.Relations
	switch {
	case slices.Contains(rel.NoDamageFrom, attacking.Name):
		return model.Immune
	case slices.Contains(rel.HalfDamageFrom, attacking.Name):
		return model.Resistant
	case slices.Contains(rel.DoubleDamageFrom, attacking.Name):
		return model.Weak
	default:
		return model.Normal
	}
}

// MatchupResult is the outcome of a move type against one or two
// defending types.
type MatchupResult struct {
	// MoveName is the move type name as typed by the user.
	MoveName string `json:"move"`

	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`

	PrimaryEffectiveness   model.Effectiveness `json:"-"`
	SecondaryEffectiveness model.Effectiveness `json:"-"`

	// Multiplier is the product of both effectiveness multipliers.
	Multiplier float64 `json:"multiplier"`
}

// Matchup computes the damage multiplier of a move of the given type
// against primary and, if non-nil, secondary. moveName is kept verbatim
// for display.
func Matchup(moveName string, move, primary, secondary *model.Type) *MatchupResult {
	res := &MatchupResult{
		MoveName:             moveName,
		Primary:              primary.Name,
		PrimaryEffectiveness: Effectiveness(primary, move),
	}
	res.Multiplier = res.PrimaryEffectiveness.Multiplier()

	if secondary != nil {
		res.Secondary = secondary.Name
		res.SecondaryEffectiveness = Effectiveness(secondary, move)
		res.Multiplier *= res.SecondaryEffectiveness.Multiplier()
	}
	return res
}
