package loader

import "golang.org/x/text/language"

// Option configures instance and family loading.
type Option func(*config)

// config holds configuration for loading.
type config struct {
	parserName string
	lang       language.Tag
}

// defaultConfig returns the default loading configuration.
func defaultConfig() config {
	return config{
		parserName: defaultParserName,
		lang:       language.Und,
	}
}

// WithParser specifies the font parser backend.
// The default is "gotext" which uses go-text/typesetting; "ximage"
// selects golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) Option {
	return func(c *config) {
		c.parserName = name
	}
}

// WithFamilyLanguage attaches a language tag to families built by
// NewFamilyFromFiles. The tag is carried as metadata on the family;
// no language matching happens in this module.
func WithFamilyLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.lang = tag
	}
}
