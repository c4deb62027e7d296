package text

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/textfx/internal/cache"
)

// maxCachedLines bounds the shaped lines kept per face.
const maxCachedLines = 256

// SegmentOp is the kind of an outline segment.
type SegmentOp uint8

const (
	SegmentMoveTo SegmentOp = iota
	SegmentLineTo
	SegmentQuadTo
	SegmentCubeTo
)

// Point is a position in pixels, y pointing down.
type Point struct {
	X, Y float64
}

// Segment is one outline command. MoveTo and LineTo use Args[0], QuadTo
// uses Args[0..1] and CubeTo uses Args[0..2]; the last used argument is the
// end point.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Line is a shaped line of text.
type Line struct {
	Text    string
	Advance float64

	// Outline holds every glyph outline of the line, positioned relative to
	// the pen start on the baseline.
	Outline []Segment

	// Ink is the union of the outline control boxes. Valid only when HasInk.
	Ink    Rect
	HasInk bool
}

// Extents are the measurements canvas-style text metrics expose.
type Extents struct {
	Advance float64
	// Ascent and Descent are the ink distances above and below the baseline.
	Ascent  float64
	Descent float64
	HasInk  bool
}

// Face is a font at a specific pixel size.
//
// A Face caches recently shaped lines and owns go-text and sfnt scratch
// state. It is safe for concurrent use; shaping is serialized per face.
type Face struct {
	font *Font
	size float64

	mu     sync.Mutex
	buf    sfnt.Buffer
	shaper *gotext.Face
	lines  *cache.Cache[string, *Line]
}

// NewFace creates a face of f at size pixels per em.
func NewFace(f *Font, size float64) *Face {
	return &Face{
		font:   f,
		size:   size,
		shaper: gotext.NewFace(f.shaper),
		lines:  cache.New[string, *Line](maxCachedLines),
	}
}

// Font returns the face's font.
func (f *Face) Font() *Font { return f.font }

// Size returns the pixel size.
func (f *Face) Size() float64 { return f.size }

// Measure returns the advance and ink extents of s.
func (f *Face) Measure(s string) Extents {
	l := f.Line(s)
	ext := Extents{Advance: l.Advance, HasInk: l.HasInk}
	if l.HasInk {
		ext.Ascent = -l.Ink.MinY
		ext.Descent = l.Ink.MaxY
	}
	return ext
}

// Line shapes s and returns its outline. Results are cached per face.
func (f *Face) Line(s string) *Line {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lines.GetOrCreate(s, func() *Line { return f.shape(s) })
}

// HarfbuzzShaper has internal mutable state; instances are pooled.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

func (f *Face) shape(s string) *Line {
	line := &Line{Text: s}
	runes := []rune(norm.NFC.String(s))
	if len(runes) == 0 || f.size <= 0 {
		return line
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.shaper,
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	ppem := floatToFixed(f.size)
	ink := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}

	var pen float64
	for _, g := range output.Glyphs {
		ox := pen + fixedToFloat(g.XOffset)
		oy := -fixedToFloat(g.YOffset)
		pen += fixedToFloat(g.Advance)

		segs, err := f.font.sfnt.LoadGlyph(&f.buf, sfnt.GlyphIndex(uint16(g.GlyphID)), ppem, nil) //nolint:gosec // glyph IDs of TrueType fonts fit in 16 bits
		if err != nil {
			continue
		}
		for _, seg := range segs {
			out := Segment{}
			n := 0
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				out.Op, n = SegmentMoveTo, 1
			case sfnt.SegmentOpLineTo:
				out.Op, n = SegmentLineTo, 1
			case sfnt.SegmentOpQuadTo:
				out.Op, n = SegmentQuadTo, 2
			case sfnt.SegmentOpCubeTo:
				out.Op, n = SegmentCubeTo, 3
			}
			for i := 0; i < n; i++ {
				p := Point{
					X: ox + fixedToFloat(seg.Args[i].X),
					Y: oy + fixedToFloat(seg.Args[i].Y),
				}
				out.Args[i] = p
				ink.MinX = math.Min(ink.MinX, p.X)
				ink.MinY = math.Min(ink.MinY, p.Y)
				ink.MaxX = math.Max(ink.MaxX, p.X)
				ink.MaxY = math.Max(ink.MaxY, p.Y)
			}
			line.Outline = append(line.Outline, out)
		}
	}

	line.Advance = pen
	if len(line.Outline) > 0 {
		line.Ink = ink
		line.HasInk = true
	}
	return line
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
