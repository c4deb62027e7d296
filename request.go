package textfx

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/textfx/text"
)

// Anchor selects how the text block is positioned on the canvas.
type Anchor uint8

const (
	// AnchorTopLeft places the block after the padding and effect margins.
	AnchorTopLeft Anchor = iota
	// AnchorCenter centers the block on the canvas.
	AnchorCenter
)

func (a Anchor) String() string {
	if a == AnchorCenter {
		return "center"
	}
	return "topleft"
}

// ParseAnchor parses "topleft" or "center". The empty string is topleft.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "topleft":
		return AnchorTopLeft, nil
	case "center":
		return AnchorCenter, nil
	}
	return AnchorTopLeft, fmt.Errorf("textfx: unknown anchor %q", s)
}

// DefaultBackground is the background color used when a request enables
// the background without a valid color.
const DefaultBackground = "#7D2ED7"

// Request describes one render. The zero value of every optional field
// selects the default behavior.
type Request struct {
	// Text may span several lines separated by "\n" or "\r\n".
	Text string

	// FontSize is the font size in user pixels.
	FontSize float64

	// ScaleX and ScaleY stretch glyphs and effects. Non-positive or
	// non-finite values mean 1.
	ScaleX, ScaleY float64

	Align text.Align

	// Padding is added around the text block on every side, in user pixels.
	Padding float64

	// ArcPct bends the output along a circular arc, 0 to 100.
	ArcPct float64

	// Scale multiplies every user-pixel quantity, for exporting at a higher
	// resolution. Non-positive or non-finite values mean 1.
	Scale float64

	// TargetWidth and TargetHeight fix the canvas size in user pixels.
	// Nil sizes the canvas to fit the content.
	TargetWidth  *float64
	TargetHeight *float64

	Anchor Anchor

	// OffsetX and OffsetY shift the text block, in user pixels.
	OffsetX, OffsetY float64

	// ShowBackground fills the canvas with Background before drawing.
	ShowBackground bool
	Background     string
}

// Lines returns the text split into lines. An empty text is one empty line.
func (r Request) Lines() []string {
	return strings.Split(strings.ReplaceAll(r.Text, "\r\n", "\n"), "\n")
}

// normalized returns r with its numeric fields coerced to usable values.
func (r Request) normalized() Request {
	r.ScaleX = positiveOr(r.ScaleX, 1)
	r.ScaleY = positiveOr(r.ScaleY, 1)
	r.Scale = positiveOr(r.Scale, 1)
	r.FontSize = finiteOr(r.FontSize, 0)
	r.Padding = math.Max(0, finiteOr(r.Padding, 0))
	r.ArcPct = clampPct(r.ArcPct, 0)
	r.OffsetX = finiteOr(r.OffsetX, 0)
	r.OffsetY = finiteOr(r.OffsetY, 0)
	r.TargetWidth = finitePtr(r.TargetWidth)
	r.TargetHeight = finitePtr(r.TargetHeight)
	return r
}

func positiveOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return def
	}
	return v
}

func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

func finitePtr(p *float64) *float64 {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return nil
	}
	v := *p
	return &v
}

// Style is the fixed text style of a Renderer.
type Style struct {
	FontFamily string
	FontWeight int

	// LineHeight is the baseline distance as a multiple of the font size.
	LineHeight float64

	// EffectPad is extra padding in user pixels added on every side.
	EffectPad float64
}

// DefaultStyle returns the default style: heavy Go font, 1.05 line height
// and 30px effect padding.
func DefaultStyle() Style {
	return Style{
		FontFamily: text.DefaultFamily,
		FontWeight: 900,
		LineHeight: 1.05,
		EffectPad:  30,
	}
}

func (s Style) normalized() Style {
	def := DefaultStyle()
	if strings.TrimSpace(s.FontFamily) == "" {
		s.FontFamily = def.FontFamily
	}
	if s.FontWeight <= 0 {
		s.FontWeight = def.FontWeight
	}
	s.LineHeight = positiveOr(s.LineHeight, def.LineHeight)
	s.EffectPad = math.Max(0, finiteOr(s.EffectPad, 0))
	return s
}
