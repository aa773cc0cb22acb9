package loader

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/typeface"
)

// ximageParser implements Parser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (p *ximageParser) Parse(data []byte) (typeface.Instance, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return typeface.Instance{}, fmt.Errorf("loader: failed to parse font: %w", err)
	}

	style, ok := styleFromOS2(data)
	if !ok {
		style = styleFromSubfamily(f)
	}

	return typeface.Instance{Style: style, Font: f}, nil
}

// styleFromSubfamily infers weight and slant from the subfamily name
// ("Bold", "Italic", "Bold Italic") for fonts whose OS/2 table is
// absent or truncated. Name-based detection only distinguishes the
// conventional four styles; anything unrecognized reads as regular.
func styleFromSubfamily(f *opentype.Font) typeface.FontStyle {
	name, err := f.Name(nil, sfnt.NameIDSubfamily)
	if err != nil || name == "" {
		return typeface.NewFontStyle(typeface.NormalWeight, typeface.SlantUpright)
	}

	lower := strings.ToLower(name)
	weight := typeface.NormalWeight
	if strings.Contains(lower, "bold") {
		weight = typeface.BoldWeight
	}
	slant := typeface.SlantUpright
	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		slant = typeface.SlantItalic
	}
	return typeface.NewFontStyle(weight, slant)
}
