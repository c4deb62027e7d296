package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnsupportedFormat is returned for font containers that cannot be
	// parsed directly, such as WOFF and WOFF2.
	ErrUnsupportedFormat = errors.New("text: unsupported font format")

	// ErrUnknownFamily is returned by Lookup for families that are not built in.
	ErrUnknownFamily = errors.New("text: unknown font family")
)

// FontError reports a failure to load or parse a named font.
type FontError struct {
	Name string
	Err  error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("text: font %q: %v", e.Name, e.Err)
}

func (e *FontError) Unwrap() error {
	return e.Err
}
