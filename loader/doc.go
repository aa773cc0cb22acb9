// Package loader builds typeface families from font files.
//
// It is the font-asset collaborator of the typeface engine: it opens
// and parses TTF/OTF data, reads each font's declared style from its
// OS/2 table, and produces the typeface.Instance and typeface.Family
// values the resolvers consume. The engine itself never touches font
// bytes.
//
// # Pluggable Parser Backend
//
// Parsing is abstracted through the Parser interface. The default
// backend ("gotext") uses go-text/typesetting, whose parsed faces are
// thread-safe and directly consumable by shaping layers. An alternate
// backend ("ximage") uses golang.org/x/image/font/opentype. Custom
// parsers can be registered for other implementations:
//
//	loader.RegisterParser("myparser", myCustomParser)
//	inst, err := loader.NewInstance(data, loader.WithParser("myparser"))
//
// # Example
//
//	fam, err := loader.NewFamilyFromFiles([]string{
//	    "Roboto-Regular.ttf",
//	    "Roboto-Bold.ttf",
//	    "Roboto-Italic.ttf",
//	    "Roboto-BoldItalic.ttf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tf := typeface.CreateFromFamiliesAuto([]*typeface.Family{fam})
package loader
