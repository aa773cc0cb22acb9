package loader

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/typeface"
)

// gotextParser implements Parser using go-text/typesetting.
//
// The instance handle is the parsed *font.Face, which embeds the
// thread-safe *font.Font and can be handed to a shaping layer
// directly without reparsing.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (p *gotextParser) Parse(data []byte) (typeface.Instance, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return typeface.Instance{}, fmt.Errorf("loader: failed to parse font: %w", err)
	}

	style, ok := styleFromOS2(data)
	if !ok {
		// Fonts without a usable OS/2 table declare no style of
		// their own; treat them as regular upright.
		style = typeface.NewFontStyle(typeface.NormalWeight, typeface.SlantUpright)
		typeface.Logger().Warn("loader: font has no OS/2 table, assuming regular")
	}

	return typeface.Instance{Style: style, Font: face}, nil
}
