// Package typeface resolves typographic styles.
//
// # Overview
//
// typeface computes canonical (weight, slant) styles and the legacy
// four-way Normal/Bold/Italic/BoldItalic categories that older
// style-selection call sites consume. It sits between font loading
// and text layout: the loader subpackage turns font files into
// Family values, and layout or rendering callers hand the resolved
// Typeface to a shaper.
//
// A Typeface is built by exactly one of five constructors:
//
//   - CreateAbsolute: explicit weight and slant
//   - CreateWithDifferentBaseWeight: a directly named family variant
//   - CreateRelative: derive from an existing typeface with a legacy style
//   - CreateFromFamilies: font families plus an explicit style request
//   - CreateFromFamiliesAuto: font families, style read from their
//     own declared instances
//
// Every Typeface is immutable and safe for concurrent use. The only
// process-wide mutable state is the default-typeface slot consumed by
// CreateRelative when no base is supplied; it is replaced atomically
// via SetDefault.
//
// # Quick Start
//
//	import "github.com/gogpu/typeface"
//
//	// Explicit style:
//	bold := typeface.CreateAbsolute(700, false)
//
//	// Derive italic from the process default:
//	italic := typeface.CreateRelative(nil, typeface.StyleItalic)
//
//	// Resolve a family's own default style:
//	fam, _ := loader.NewFamilyFromFiles([]string{"Roboto-Regular.ttf", "Roboto-Bold.ttf"})
//	tf := typeface.CreateFromFamiliesAuto([]*typeface.Family{fam})
//
// # Derivation semantics
//
// Relative derivation always computes from the base's original weight
// rather than its most recent resolved style, so derivations do not
// stack: deriving Bold and then Normal recovers the original weight.
// Weights outside [1, 1000] are clamped, never rejected, and a
// missing base transparently substitutes the process default; none of
// the resolvers has an error return.
package typeface
