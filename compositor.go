package textfx

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/textfx/surface"
)

// compositor draws the layers of one render onto the main surface.
type compositor struct {
	main surface.Surface
	lay  Layout
	txt  surface.Text
	log  *slog.Logger

	// newSurface allocates scratch surfaces of the canvas size.
	newSurface func(w, h int) (surface.Surface, error)
	scratch    surface.Surface
}

var opaqueBlack = color.NRGBA{A: 255}

func (c *compositor) close() {
	if c.scratch != nil {
		c.scratch.Close()
		c.scratch = nil
	}
}

// scratchSurface returns a cleared scratch surface of the canvas size.
func (c *compositor) scratchSurface() (surface.Surface, error) {
	if c.scratch == nil {
		s, err := c.newSurface(c.lay.Width, c.lay.Height)
		if err != nil {
			return nil, fmt.Errorf("%w: scratch: %w", ErrSurfaceUnavailable, err)
		}
		c.scratch = s
	}
	c.scratch.Clear(color.Transparent)
	return c.scratch, nil
}

// draw composites one layer. Layers of unknown type are skipped.
func (c *compositor) draw(l Layer) error {
	switch p := l.Params.(type) {
	case DropShadowParams:
		c.dropShadow(p.values())
	case OuterGlowParams:
		return c.outerGlow(p.values())
	case ExtrusionParams:
		c.extrusion(p.values())
	case FillParams:
		c.main.FillText(c.txt, surface.FillStyle{Color: hexColor(p.Color, DefaultFillColor, 1)})
	case GradientFillParams:
		c.gradientFill(p)
	case StrokeParams:
		return c.stroke(p.values())
	default:
		c.log.Warn("textfx: skipping layer of unknown type", "id", l.ID, "type", l.Type())
	}
	return nil
}

// sigma returns per-axis Gaussian deviations for a canvas shadow blur of
// blur user pixels.
func (c *compositor) sigma(blur float64) (float64, float64) {
	return blur * c.lay.ScaleX / 2, blur * c.lay.ScaleY / 2
}

func (c *compositor) dropShadow(v shadowValues) {
	scale := c.lay.Scale
	dist := v.distance * scale
	dx := dist * math.Cos(v.angleRad) * c.lay.ScaleX
	dy := dist * math.Sin(v.angleRad) * c.lay.ScaleY
	mode := surface.BlendSourceOver
	if v.multiply {
		mode = surface.BlendMultiply
	}

	sigX, sigY := c.sigma(v.sizePx * scale)
	c.main.ShadowText(c.txt, surface.Shadow{
		Color:   v.color,
		OffsetX: dx,
		OffsetY: dy,
		SigmaX:  sigX,
		SigmaY:  sigY,
		Blend:   mode,
	})

	if spread := v.spreadPx(scale); spread > 0.1 {
		c.main.StrokeText(c.txt.Translate(dx, dy), surface.StrokeStyle{
			Color:      v.color,
			Width:      spread,
			MiterLimit: 2,
			Blend:      mode,
		})
	}
}

func (c *compositor) outerGlow(v glowValues) error {
	tmp, err := c.scratchSurface()
	if err != nil {
		return err
	}
	scale := c.lay.Scale
	sigX, sigY := c.sigma(v.sizePx * scale)
	tmp.ShadowText(c.txt, surface.Shadow{
		Color:   v.color,
		OffsetX: v.dx * scale * c.lay.ScaleX,
		OffsetY: v.dy * scale * c.lay.ScaleY,
		SigmaX:  sigX,
		SigmaY:  sigY,
	})
	tmp.FillText(c.txt, surface.FillStyle{Color: opaqueBlack, Blend: surface.BlendDestinationOut})
	c.main.DrawSurface(tmp, surface.BlendSourceOver)
	return nil
}

// extrusionCopy is one offset copy of an extrusion trail.
type extrusionCopy struct {
	step  int
	alpha float64
}

// extrusionCopies returns the copies of a trail of steps: one per whole
// step at full alpha and, for a fractional remainder, one more at the
// fractional alpha.
func extrusionCopies(steps float64) []extrusionCopy {
	whole := int(math.Floor(steps))
	out := make([]extrusionCopy, 0, whole+1)
	for k := 1; k <= whole; k++ {
		out = append(out, extrusionCopy{step: k, alpha: 1})
	}
	if frac := steps - float64(whole); frac > 0 {
		out = append(out, extrusionCopy{step: whole + 1, alpha: frac})
	}
	return out
}

func (c *compositor) extrusion(v extrusionValues) {
	scale := c.lay.Scale
	sx, sy := c.lay.ScaleX, c.lay.ScaleY
	blur := v.blurPx * scale
	for _, cp := range extrusionCopies(v.steps) {
		k := float64(cp.step)
		col := v.color
		col.A = uint8(math.Round(clamp01(v.opacity*cp.alpha) * 255))
		c.main.FillText(c.txt.Translate(v.dx*scale*k*sx, v.dy*scale*k*sy), surface.FillStyle{
			Color:  col,
			SigmaX: blur * sx,
			SigmaY: blur * sy,
		})
	}
}

// gradientFill fills the glyphs with a linear gradient whose axis spans
// the projection of the text block's corners onto the gradient direction.
func (c *compositor) gradientFill(p GradientFillParams) {
	a := p.angleRad()
	vx, vy := math.Cos(a), math.Sin(a)

	left, right := c.lay.XLeft, c.lay.XLeft+c.lay.BlockWidth
	top, bottom := c.lay.BlockTop, c.lay.BlockBottom
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pt := range [4][2]float64{{left, top}, {right, top}, {left, bottom}, {right, bottom}} {
		proj := pt[0]*vx + pt[1]*vy
		lo = math.Min(lo, proj)
		hi = math.Max(hi, proj)
	}
	t0, t1 := lo, lo+math.Max(1e-6, hi-lo)

	g := surface.NewLinearGradient(vx*t0, vy*t0, vx*t1, vy*t1, ColorRamp(NormalizeStops(p)))
	c.main.FillText(c.txt, surface.FillStyle{Pattern: g})
}

func (c *compositor) stroke(v strokeValues) error {
	w := v.widthPx * c.lay.Scale
	if w <= 0 {
		return nil
	}
	tmp, err := c.scratchSurface()
	if err != nil {
		return err
	}
	tmp.StrokeText(c.txt, surface.StrokeStyle{Color: v.color, Width: w, MiterLimit: 2})
	tmp.FillText(c.txt, surface.FillStyle{Color: opaqueBlack, Blend: surface.BlendDestinationOut})
	c.main.DrawSurface(tmp, surface.BlendSourceOver)
	return nil
}
