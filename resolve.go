package typeface

// boldWeightShift is added to the base weight when a bold legacy
// style is requested through CreateRelative. 400 + 300 = 700, the
// conventional regular-to-bold step.
const boldWeightShift = 300

// CreateAbsolute builds a typeface from an explicit weight and slant.
// Out-of-range weights are clamped, never rejected. The legacy
// category is classified from the resolved style, so weight 700
// reports StyleBold. No families are attached.
func CreateAbsolute(weight int, italic bool) *Typeface {
	fs := NewFontStyle(weight, slantOf(italic))
	return &Typeface{
		baseWeight: fs.Weight,
		style:      fs,
		apiStyle:   Classify(fs),
	}
}

// CreateWithDifferentBaseWeight builds a typeface for a directly
// named family variant, such as a "light" or "bold" face accessed by
// name rather than by style transform.
//
// Unlike CreateAbsolute, the legacy category is forced to StyleNormal
// regardless of weight: a named variant is the "normal" member of its
// own family, not a style-transformed one. Callers depend on this
// asymmetry; CreateRelative on the result then shifts from the named
// weight (a bold request on a 300-weight base resolves to 600, not
// 700).
func CreateWithDifferentBaseWeight(weight int) *Typeface {
	fs := NewFontStyle(weight, SlantUpright)
	return &Typeface{
		baseWeight: fs.Weight,
		style:      fs,
		apiStyle:   StyleNormal,
	}
}

// CreateRelative derives a new typeface from base with the requested
// legacy style. A nil base resolves through the process-wide default
// (see SetDefault).
//
// The derivation is always computed from the base's original weight,
// never from its most recent resolved style. Deriving twice in
// sequence therefore equals deriving once: asking for the Normal
// variant of something previously resolved Bold recovers the true
// original weight. The requested style is stored verbatim as the
// legacy category, and the base's families are shared by reference.
func CreateRelative(base *Typeface, style Style) *Typeface {
	base = ResolveDefault(base)
	weight := base.baseWeight
	if style.Bold() {
		weight += boldWeightShift
	}
	return &Typeface{
		baseWeight: base.baseWeight,
		style:      NewFontStyle(weight, slantOf(style.Italic())),
		apiStyle:   style,
		families:   base.families,
	}
}

// CreateFromFamilies builds a typeface from families with an explicit
// weight and slant. The numeric request is trusted as-is (clamped
// only); no per-instance search occurs. The families slice is
// retained by reference for later relative derivation.
//
// families must not be empty: that is a caller contract violation and
// panics rather than producing a degraded result.
func CreateFromFamilies(families []*Family, weight int, italic bool) *Typeface {
	mustFamilies(families)
	fs := NewFontStyle(weight, slantOf(italic))
	return &Typeface{
		baseWeight: fs.Weight,
		style:      fs,
		apiStyle:   Classify(fs),
		families:   families,
	}
}

// CreateFromFamiliesAuto builds a typeface from families, detecting
// weight and slant from the primary family's own declared instances
// instead of a numeric request.
//
// Only families[0] is inspected. The instance closest to regular
// (NormalWeight, upright) wins; a family with no regular instance
// still resolves deterministically to its nearest weight, so a family
// holding only 700-weight faces yields (700, Upright). The
// winning instance's declared style becomes both the base weight and
// the resolved style, and the category is classified from it.
//
// families must not be empty; see CreateFromFamilies.
func CreateFromFamiliesAuto(families []*Family) *Typeface {
	mustFamilies(families)
	fs := NewFontStyle(NormalWeight, SlantUpright)
	if inst, ok := families[0].ClosestInstance(fs); ok {
		fs = inst.Style
	}
	Logger().Debug("typeface: auto-detected default style",
		"weight", fs.Weight, "slant", fs.Slant.String())
	return &Typeface{
		baseWeight: fs.Weight,
		style:      fs,
		apiStyle:   Classify(fs),
		families:   families,
	}
}

func slantOf(italic bool) Slant {
	if italic {
		return SlantItalic
	}
	return SlantUpright
}

// mustFamilies enforces the non-empty families contract.
func mustFamilies(families []*Family) {
	if len(families) == 0 {
		panic("typeface: families must not be empty")
	}
}
