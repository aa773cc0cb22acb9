package typeface

import "golang.org/x/text/language"

// Font is an opaque reference to loaded font asset data.
// It is produced and owned by the font-loading layer (see the loader
// subpackage); the engine never inspects, allocates, or frees it.
type Font = any

// Instance pairs a declared style with the loaded font that carries it.
type Instance struct {
	// Style is the style the font declares for itself.
	Style FontStyle
	// Font is the loaded asset backing this instance.
	Font Font
}

// Family is an ordered set of style instances representing one type
// family. Order is declaration order and is significant: nearest-style
// matching breaks ties in favor of the first-declared instance.
//
// A family conventionally holds up to four instances
// (regular/bold/italic/bold-italic), but none of the four is required.
//
// Family is immutable after construction and safe for concurrent use.
type Family struct {
	instances []Instance
	lang      language.Tag
}

// FamilyOption configures Family construction.
type FamilyOption func(*Family)

// WithLanguage attaches a language tag to the family.
// The tag is metadata for fallback-chain builders layered on top of
// this package; the engine itself performs no language matching.
func WithLanguage(tag language.Tag) FamilyOption {
	return func(f *Family) {
		f.lang = tag
	}
}

// NewFamily creates a Family from instances in declaration order.
// The instances slice is copied; the caller may reuse it.
func NewFamily(instances []Instance, opts ...FamilyOption) *Family {
	f := &Family{
		instances: append([]Instance(nil), instances...),
		lang:      language.Und,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NumInstances returns the number of instances in the family.
func (f *Family) NumInstances() int { return len(f.instances) }

// Instance returns the i-th instance in declaration order.
func (f *Family) Instance(i int) Instance { return f.instances[i] }

// Instances returns a copy of the family's instances in declaration
// order.
func (f *Family) Instances() []Instance {
	return append([]Instance(nil), f.instances...)
}

// Language returns the language tag attached to the family, or
// language.Und when none was set.
func (f *Family) Language() language.Tag { return f.lang }
