package textfx

import (
	"image/color"
	"math"
)

// Render-time views of layer params. Every number is finite and clamped to
// its drawable range, and every color is resolved; nothing here fails.

const (
	maxStrokeWidth     = 200
	maxExtrusionSteps  = 200
	maxExtrusionBlurPx = 50
)

// nonNeg maps non-finite and negative values to 0.
func nonNeg(v float64) float64 {
	return math.Max(0, finiteOr(v, 0))
}

func opacity(pct float64) float64 {
	return clampPct(pct, 0) / 100
}

func clampRange(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, finiteOr(v, 0)))
}

type shadowValues struct {
	color     color.NRGBA
	multiply  bool
	sizePx    float64
	distance  float64
	angleRad  float64
	spreadPct float64
}

func (p DropShadowParams) values() shadowValues {
	return shadowValues{
		color:     hexColor(p.Color, DefaultShadowColor, opacity(p.OpacityPct)),
		multiply:  p.Blend == ShadowMultiply,
		sizePx:    nonNeg(p.SizePx),
		distance:  finiteOr(p.DistancePx, 0),
		angleRad:  finiteOr(p.AngleDeg, 0) * math.Pi / 180,
		spreadPct: nonNeg(p.SpreadPct),
	}
}

// spreadPx returns the spread stroke width in user pixels at scale.
func (v shadowValues) spreadPx(scale float64) float64 {
	return v.spreadPct / 100 * v.sizePx * 2 * scale
}

type glowValues struct {
	color  color.NRGBA
	sizePx float64
	dx, dy float64
}

func (p OuterGlowParams) values() glowValues {
	return glowValues{
		color:  hexColor(p.Color, DefaultGlowColor, opacity(p.OpacityPct)),
		sizePx: nonNeg(p.SizePx),
		dx:     finiteOr(p.DX, 0),
		dy:     finiteOr(p.DY, 0),
	}
}

type strokeValues struct {
	color   color.NRGBA
	widthPx float64
}

func (p StrokeParams) values() strokeValues {
	return strokeValues{
		color:   hexColor(p.Color, DefaultStrokeColor, opacity(p.OpacityPct)),
		widthPx: clampRange(p.WidthPx, 0, maxStrokeWidth),
	}
}

type extrusionValues struct {
	color   color.NRGBA
	opacity float64
	steps   float64
	dx, dy  float64
	blurPx  float64
}

func (p ExtrusionParams) values() extrusionValues {
	return extrusionValues{
		color:   hexColor(p.Color, DefaultExtrusionColor, 1),
		opacity: opacity(p.OpacityPct),
		steps:   clampRange(p.Steps, 0, maxExtrusionSteps),
		dx:      finiteOr(p.DX, 0),
		dy:      finiteOr(p.DY, 0),
		blurPx:  clampRange(p.BlurPx, 0, maxExtrusionBlurPx),
	}
}

// angleRad returns the gradient axis angle in radians. Non-finite
// angles mean 90 degrees.
func (p GradientFillParams) angleRad() float64 {
	return finiteOr(p.AngleDeg, 90) * math.Pi / 180
}
