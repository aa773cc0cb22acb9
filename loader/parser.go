package loader

import "github.com/gogpu/typeface"

// Parser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., go-text/typesetting vs golang.org/x/image/font/opentype).
//
// The default implementation uses go-text/typesetting.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns an instance:
	// the style the font declares for itself plus an opaque handle to
	// the parsed font for downstream consumers.
	Parse(data []byte) (typeface.Instance, error)
}

// parserRegistry holds registered font parsers.
// The default parser is "gotext" (go-text/typesetting).
var parserRegistry = map[string]Parser{
	"gotext": &gotextParser{},
	"ximage": &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "gotext"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser Parser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) Parser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
