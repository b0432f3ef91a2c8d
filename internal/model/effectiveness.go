package model

import "strconv"

// Effectiveness is the damage multiplier class of an attack against a type.
// It stays symbolic until output, where Multiplier converts it.
type Effectiveness int

const (
	// Normal damage (1x). This is the zero value.
	Normal Effectiveness = iota

	// Immune means no damage (0x).
	Immune

	// Resistant means half damage (0.5x).
	Resistant

	// Weak means double damage (2x).
	Weak
)

// String returns a human-readable name of the effectiveness class.
func (e Effectiveness) String() string {
	switch e {
	case Normal:
		return "normal"
	case Immune:
		return "immune"
	case Resistant:
		return "resistant"
	case Weak:
		return "weak"
	default:
		return "unknown"
	}
}

// Multiplier returns the numeric damage multiplier.
func (e Effectiveness) Multiplier() float64 {
	switch e {
	case Immune:
		return 0.0
	case Resistant:
		return 0.5
	case Weak:
		return 2.0
	default:
		return 1.0
	}
}

// FormatMultiplier formats m with the fewest digits that represent it
// exactly, so 1 prints as "1" and 0.25 as "0.25".
func FormatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'g', -1, 64)
}
