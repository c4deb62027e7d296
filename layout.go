package textfx

import (
	"github.com/gogpu/textfx/surface"
	"github.com/gogpu/textfx/text"
)

// Layout is the resolved geometry of one render. All lengths are device
// pixels.
type Layout struct {
	Lines []string
	Align text.Align

	// FontPx is the font size in user pixels after the export scale.
	FontPx float64

	Scale          float64
	ScaleX, ScaleY float64

	// Text block metrics after glyph stretching.
	BlockWidth  float64
	BlockHeight float64
	Ascent      float64
	Descent     float64
	LineHeight  float64

	// Pad is padding plus effect padding.
	Pad     float64
	Margins Margins

	Width, Height int

	// XLeft is the left edge of the block, X the alignment anchor and Y0 the
	// first baseline.
	XLeft, X, Y0 float64

	// BlockTop and BlockBottom bound the block vertically.
	BlockTop, BlockBottom float64
}

// Baseline returns the baseline of line i.
func (l Layout) Baseline(i int) float64 {
	return l.Y0 + float64(i)*l.LineHeight
}

// Text returns the surface text for the block drawn with face.
func (l Layout) Text(face *text.Face) surface.Text {
	return surface.Text{
		Face:       face,
		Lines:      l.Lines,
		Align:      l.Align,
		X:          l.X,
		Y:          l.Y0,
		LineHeight: l.LineHeight,
		ScaleX:     l.ScaleX,
		ScaleY:     l.ScaleY,
	}
}

// layoutBlock computes the layout of req with the draw layers. face must
// be sized to the request's font size times its scale.
func layoutBlock(face *text.Face, style Style, req Request, draw []Layer) Layout {
	lines := req.Lines()
	size := face.Size()
	sx, sy := req.ScaleX, req.ScaleY

	var width float64
	for _, s := range lines {
		width = max(width, face.Measure(s).Advance)
	}
	first := lines[0]
	if first == "" {
		first = " "
	}
	ascent, descent := 0.8*size, 0.2*size
	if ext := face.Measure(first); ext.HasInk {
		ascent, descent = ext.Ascent, ext.Descent
	}
	lineHeight := size * style.LineHeight
	height := ascent + descent + float64(len(lines)-1)*lineHeight

	l := Layout{
		Lines:       lines,
		Align:       req.Align,
		FontPx:      size,
		Scale:       req.Scale,
		ScaleX:      sx,
		ScaleY:      sy,
		BlockWidth:  width * sx,
		BlockHeight: height * sy,
		Ascent:      ascent * sy,
		Descent:     descent * sy,
		LineHeight:  lineHeight * sy,
		Pad:         (req.Padding + style.EffectPad) * req.Scale,
		Margins:     ComputeMargins(draw, req.Scale, sx, sy),
	}

	var tw, th *float64
	if req.TargetWidth != nil {
		v := *req.TargetWidth * req.Scale
		tw = &v
	}
	if req.TargetHeight != nil {
		v := *req.TargetHeight * req.Scale
		th = &v
	}
	l.Width, l.Height = CanvasSize(l.BlockWidth, l.BlockHeight, l.Pad, l.Margins, tw, th)

	shiftX, shiftY := req.OffsetX*req.Scale, req.OffsetY*req.Scale
	if req.Anchor == AnchorCenter {
		l.XLeft = (float64(l.Width)-l.BlockWidth)/2 + shiftX
		l.Y0 = (float64(l.Height)-l.BlockHeight)/2 + l.Ascent + shiftY
	} else {
		l.XLeft = l.Pad + l.Margins.Left + shiftX
		l.Y0 = l.Pad + l.Margins.Top + l.Ascent + shiftY
	}

	switch req.Align {
	case text.AlignLeft:
		l.X = l.XLeft
	case text.AlignRight:
		l.X = l.XLeft + l.BlockWidth
	default:
		l.X = l.XLeft + l.BlockWidth/2
	}
	l.BlockTop = l.Y0 - l.Ascent
	l.BlockBottom = l.BlockTop + l.BlockHeight
	return l
}
