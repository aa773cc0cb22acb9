package typeface

// Style is the legacy four-way style category consumed by older
// style-selection call sites. It coexists with the fine-grained
// FontStyle: Style is a classification, FontStyle is the resolved
// value, and neither is derived from the other after construction.
//
// The values form a bitmask (bold and italic flags), matching the
// classic platform API constants.
type Style int

const (
	// StyleNormal is regular weight, upright.
	StyleNormal Style = 0
	// StyleBold is bold weight, upright.
	StyleBold Style = 1
	// StyleItalic is regular weight, italic.
	StyleItalic Style = 2
	// StyleBoldItalic is bold weight, italic.
	StyleBoldItalic Style = StyleBold | StyleItalic
)

// BoldThreshold is the minimum weight classified as bold.
// Weight 400 classifies Normal and weight 700 classifies Bold;
// the boundary sits at 600.
const BoldThreshold = 600

// Bold reports whether the category includes the bold flag.
func (s Style) Bold() bool { return s&StyleBold != 0 }

// Italic reports whether the category includes the italic flag.
func (s Style) Italic() bool { return s&StyleItalic != 0 }

// String returns the string representation of the style category.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleBold:
		return "Bold"
	case StyleItalic:
		return "Italic"
	case StyleBoldItalic:
		return "BoldItalic"
	default:
		return unknownStr
	}
}

// Classify maps a resolved style to its legacy category.
// Pure and total: every FontStyle classifies to exactly one Style.
func Classify(fs FontStyle) Style {
	s := StyleNormal
	if fs.Weight >= BoldThreshold {
		s |= StyleBold
	}
	if fs.Slant == SlantItalic {
		s |= StyleItalic
	}
	return s
}
