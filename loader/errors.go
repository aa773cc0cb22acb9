package loader

import "errors"

// Sentinel errors for loader package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("loader: empty font data")

	// ErrNoFonts is returned when a family is built from zero font files.
	ErrNoFonts = errors.New("loader: no font files")
)
