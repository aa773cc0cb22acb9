package typeface

import "strconv"

// Typeface is a resolved typeface: a base weight, a resolved style,
// the legacy category assigned by the resolver that built it, and an
// optional reference to the font families backing it.
//
// A Typeface is immutable for its entire lifetime and therefore safe
// for concurrent use without locking. It is created by exactly one of
// CreateAbsolute, CreateWithDifferentBaseWeight, CreateRelative,
// CreateFromFamilies, or CreateFromFamiliesAuto.
type Typeface struct {
	baseWeight int
	style      FontStyle
	apiStyle   Style
	families   []*Family
}

// BaseWeight returns the original numeric weight of the typeface.
// It survives any number of relative derivations unchanged, which is
// what lets a later "Normal" request recover the true original weight
// rather than a doubly-boosted one.
func (t *Typeface) BaseWeight() int { return t.baseWeight }

// FontStyle returns the resolved weight/slant of the typeface.
func (t *Typeface) FontStyle() FontStyle { return t.style }

// Style returns the legacy category fixed at construction time.
// It is assigned by the resolver, not re-derived from the resolved
// style: CreateRelative stores the requested category verbatim and
// CreateWithDifferentBaseWeight always reports StyleNormal.
func (t *Typeface) Style() Style { return t.apiStyle }

// Families returns the font families backing the typeface, in
// fallback order. The slice is shared between the typeface and all of
// its relative derivations; callers must treat it as read-only.
// It is empty for typefaces not backed by families.
func (t *Typeface) Families() []*Family { return t.families }

// String returns a compact representation for logs and test failures.
func (t *Typeface) String() string {
	return "typeface(" + t.style.String() + " base " + strconv.Itoa(t.baseWeight) + " " + t.apiStyle.String() + ")"
}
