// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// BlendMode selects how drawn pixels combine with the surface.
type BlendMode uint8

const (
	// BlendSourceOver draws over existing content (default).
	BlendSourceOver BlendMode = iota
	// BlendMultiply multiplies colors where both are present.
	BlendMultiply
	// BlendDestinationOut erases existing content by the drawn alpha.
	BlendDestinationOut
	// BlendDestinationOver draws underneath existing content.
	BlendDestinationOver
	// BlendCopy replaces existing content.
	BlendCopy
)

// FillStyle defines how text is filled.
type FillStyle struct {
	// Color is the fill color. Ignored when Pattern is set.
	Color color.Color

	// Pattern is an optional paint evaluated per pixel.
	Pattern Pattern

	// Blend is the compositing mode.
	Blend BlendMode

	// SigmaX and SigmaY blur the filled coverage before compositing.
	SigmaX, SigmaY float64
}

// StrokeStyle defines how text outlines are stroked.
type StrokeStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the line width in user space; it is scaled with the glyphs.
	Width float64

	// MiterLimit mirrors canvas state. Joins are always round.
	MiterLimit float64

	// Blend is the compositing mode.
	Blend BlendMode
}

// Shadow describes a blurred, offset silhouette.
type Shadow struct {
	Color color.Color

	// OffsetX and OffsetY are in device pixels.
	OffsetX, OffsetY float64

	// SigmaX and SigmaY are the Gaussian standard deviations in device pixels.
	SigmaX, SigmaY float64

	Blend BlendMode
}

// Options configures surface creation through the registry.
type Options struct {
	Width  int
	Height int
}

// Pattern is a paint that varies per pixel.
type Pattern interface {
	// ColorAt returns the premultiplied color at device position (x, y).
	ColorAt(x, y float64) color.RGBA
}

// ColorStop is one stop of a gradient. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.Color
}

const gradientLUTSize = 1024

// LinearGradient interpolates stops in sRGB along the segment from
// (X0, Y0) to (X1, Y1) and pads beyond both ends.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64

	lut [gradientLUTSize]color.RGBA
}

// NewLinearGradient creates a gradient. Stops are sorted by offset with ties
// kept in order; a later stop at the same offset starts a hard transition.
func NewLinearGradient(x0, y0, x1, y1 float64, stops []ColorStop) *LinearGradient {
	g := &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	for i := range g.lut {
		t := float64(i) / (gradientLUTSize - 1)
		g.lut[i] = evalStops(sorted, t)
	}
	return g
}

// ColorAt implements Pattern.
func (g *LinearGradient) ColorAt(x, y float64) color.RGBA {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	den := dx*dx + dy*dy
	var t float64
	if den > 0 {
		t = ((x-g.X0)*dx + (y-g.Y0)*dy) / den
	}
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return g.lut[int(t*(gradientLUTSize-1)+0.5)]
}

func evalStops(stops []ColorStop, t float64) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{}
	}
	if t <= stops[0].Offset {
		return premultiplied(stops[0].Color)
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return premultiplied(last.Color)
	}

	i := len(stops) - 2
	for i > 0 && stops[i].Offset > t {
		i--
	}
	a, b := stops[i], stops[i+1]
	frac := (t - a.Offset) / (b.Offset - a.Offset)

	ca, aa := toColorful(a.Color)
	cb, ab := toColorful(b.Color)
	c := ca.BlendRgb(cb, frac)
	alpha := aa + (ab-aa)*frac
	r, g, bl := c.RGB255()
	return premultiplied(color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha * 255))})
}

func toColorful(c color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}, float64(n.A) / 255
}

func premultiplied(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
