package typeface

import "strconv"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Weight bounds and conventional values, matching the usual
// OS/2 usWeightClass scale (100 = thin .. 900 = black).
const (
	// MinWeight is the lightest representable weight.
	MinWeight = 1
	// MaxWeight is the heaviest representable weight.
	MaxWeight = 1000
	// NormalWeight is the conventional regular weight.
	NormalWeight = 400
	// BoldWeight is the conventional bold weight.
	BoldWeight = 700
)

// Slant specifies whether a style is upright or italic.
type Slant uint8

const (
	// SlantUpright is regular, non-slanted text.
	SlantUpright Slant = iota
	// SlantItalic is italic (or oblique) text.
	SlantItalic
)

// String returns the string representation of the slant.
func (s Slant) String() string {
	switch s {
	case SlantUpright:
		return "Upright"
	case SlantItalic:
		return "Italic"
	default:
		return unknownStr
	}
}

// FontStyle is a resolved weight/slant pair.
// The zero value is not meaningful; construct through NewFontStyle,
// which guarantees the weight is within [MinWeight, MaxWeight].
type FontStyle struct {
	// Weight is the numeric weight in [MinWeight, MaxWeight].
	Weight int
	// Slant is the slant of the style.
	Slant Slant
}

// NewFontStyle returns a normalized FontStyle.
// Out-of-range weights are clamped, never rejected.
func NewFontStyle(weight int, slant Slant) FontStyle {
	return FontStyle{Weight: clampWeight(weight), Slant: slant}
}

// String returns a compact representation like "400/Upright".
func (fs FontStyle) String() string {
	return strconv.Itoa(fs.Weight) + "/" + fs.Slant.String()
}

// clampWeight clamps a weight into [MinWeight, MaxWeight].
func clampWeight(w int) int {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}
