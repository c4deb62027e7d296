package text

import (
	"bytes"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"github.com/h2non/filetype"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed TrueType or OpenType font.
//
// Font is immutable and safe for concurrent use. The go-text font is kept
// for shaping, the sfnt font for outlines and metrics; both read the same
// data so glyph IDs agree.
type Font struct {
	name   string
	data   []byte
	sfnt   *sfnt.Font
	shaper *gotext.Font
}

// ParseFont parses TTF or OTF data. The name is used in error messages and
// as a fallback when the font has no family name record.
func ParseFont(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, &FontError{Name: name, Err: ErrEmptyFontData}
	}

	if kind, err := filetype.Match(data); err == nil {
		switch kind.Extension {
		case "woff", "woff2":
			return nil, &FontError{Name: name, Err: fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.Extension)}
		}
	}

	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, &FontError{Name: name, Err: err}
	}

	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Name: name, Err: err}
	}

	if family, err := sf.Name(nil, sfnt.NameIDFamily); err == nil && family != "" && name == "" {
		name = family
	}

	return &Font{
		name:   name,
		data:   data,
		sfnt:   sf,
		shaper: face.Font,
	}, nil
}

// LoadFile reads and parses a font file.
func LoadFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontError{Name: path, Err: err}
	}
	return ParseFont(path, data)
}

// Name returns the font's display name.
func (f *Font) Name() string {
	return f.name
}

// Family returns the family name record, or the display name when absent.
func (f *Font) Family() string {
	if family, err := f.sfnt.Name(nil, sfnt.NameIDFamily); err == nil && family != "" {
		return family
	}
	return f.name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.sfnt.NumGlyphs()
}
