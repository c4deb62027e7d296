package textfx

import (
	"math"

	"github.com/gogpu/textfx/internal/filter"
)

// Margins is the extra room, in device pixels, that effects need on each
// side of the text block.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// grow raises every side to at least the matching side of o.
func (m *Margins) grow(o Margins) {
	m.Left = math.Max(m.Left, o.Left)
	m.Right = math.Max(m.Right, o.Right)
	m.Top = math.Max(m.Top, o.Top)
	m.Bottom = math.Max(m.Bottom, o.Bottom)
}

// uniform returns margins of v on every side.
func uniform(v float64) Margins {
	return Margins{Left: v, Right: v, Top: v, Bottom: v}
}

// around returns margins of rx left and right and ry top and bottom, plus
// the offset (dx, dy) on the side it points to.
func around(rx, ry, dx, dy float64) Margins {
	return Margins{
		Left:   rx + math.Max(0, -dx),
		Right:  rx + math.Max(0, dx),
		Top:    ry + math.Max(0, -dy),
		Bottom: ry + math.Max(0, dy),
	}
}

// blurReach is how far a Gaussian blur of sigma device pixels carries
// coverage: the kernel radius plus one pixel of edge antialiasing.
func blurReach(sigma float64) float64 {
	e := filter.Reach(sigma)
	if e == 0 {
		return 0
	}
	return float64(e + 1)
}

// ComputeMargins returns the room the layers in draw need so that no
// blur, offset, stroke or extrusion trail is clipped. scale is the export
// multiplier; sx and sy the glyph stretch. Blur sides are at least the
// nominal blur scaled by the larger of sx and sy, and never less than the
// reach of the Gaussian kernel the compositor applies on that axis. Layers
// of other types need no room.
func ComputeMargins(draw []Layer, scale, sx, sy float64) Margins {
	blurScale := math.Max(sx, sy)

	var m Margins
	for _, l := range draw {
		switch p := l.Params.(type) {
		case DropShadowParams:
			v := p.values()
			blur := v.sizePx * scale
			dx := v.distance * scale * math.Cos(v.angleRad) * sx
			dy := v.distance * scale * math.Sin(v.angleRad) * sy
			m.grow(around(shadowReach(blur, blurScale, sx), shadowReach(blur, blurScale, sy), dx, dy))
			spread := v.spreadPx(scale) * blurScale
			m.grow(around(spread, spread, dx, dy))

		case OuterGlowParams:
			v := p.values()
			blur := v.sizePx * scale
			m.grow(around(shadowReach(blur, blurScale, sx), shadowReach(blur, blurScale, sy),
				v.dx*scale*sx, v.dy*scale*sy))

		case StrokeParams:
			m.grow(uniform(p.values().widthPx * scale * blurScale))

		case ExtrusionParams:
			v := p.values()
			// A fractional remainder draws one more copy at the next step.
			trail := math.Ceil(v.steps) * scale
			var rx, ry float64
			if v.blurPx > 0 {
				blur := v.blurPx * scale
				rx = math.Max(2*blur*blurScale, blurReach(blur*sx))
				ry = math.Max(2*blur*blurScale, blurReach(blur*sy))
			}
			m.grow(around(rx, ry, v.dx*trail*sx, v.dy*trail*sy))
		}
	}
	return m
}

// shadowReach is the margin for a canvas shadow blur of blur device pixels
// on an axis stretched by s. Canvas shadows use sigma = blur/2.
func shadowReach(blur, blurScale, s float64) float64 {
	return math.Max(blur*blurScale, blurReach(blur*s/2))
}

// CanvasSize returns the canvas dimensions for a block of blockW x blockH
// device pixels with pad on every side plus m. A non-nil target (in device
// pixels) replaces the computed size on its axis. Sizes are floored and at
// least 1.
func CanvasSize(blockW, blockH, pad float64, m Margins, targetW, targetH *float64) (int, int) {
	w := blockW + 2*pad + m.Left + m.Right
	h := blockH + 2*pad + m.Top + m.Bottom
	if targetW != nil {
		w = *targetW
	}
	if targetH != nil {
		h = *targetH
	}
	return canvasDim(w), canvasDim(h)
}

func canvasDim(v float64) int {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(v))
}
