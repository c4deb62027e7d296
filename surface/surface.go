// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/textfx/text"
)

// Surface is a raster target for text effects.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Resize changes the dimensions and clears the surface to transparent.
	// Dimensions below 1 are raised to 1.
	Resize(width, height int) error

	// Clear replaces every pixel with c.
	Clear(c color.Color)

	// FillText fills the glyphs of t.
	FillText(t Text, style FillStyle)

	// StrokeText strokes the glyph outlines of t with round joins.
	StrokeText(t Text, style StrokeStyle)

	// ShadowText draws only the shadow the glyphs of t would cast.
	ShadowText(t Text, shadow Shadow)

	// DrawSurface composites src onto this surface at the origin.
	DrawSurface(src Surface, mode BlendMode)

	// Snapshot returns a copy of the surface contents.
	Snapshot() *image.RGBA

	// WritePixels replaces the surface contents with img, resizing the
	// surface to img's dimensions.
	WritePixels(img *image.RGBA) error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Text is a block of lines positioned in device space.
//
// Glyph geometry from Face is in user space and is scaled by ScaleX and
// ScaleY; X and Y are the device position of the first line's alignment
// anchor on its baseline. Line i sits LineHeight device pixels below
// line 0.
type Text struct {
	Face       *text.Face
	Lines      []string
	Align      text.Align
	X, Y       float64
	LineHeight float64
	ScaleX     float64
	ScaleY     float64
}

// Translate returns t moved by (dx, dy) device pixels.
func (t Text) Translate(dx, dy float64) Text {
	t.X += dx
	t.Y += dy
	return t
}

func (t Text) scale() (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// ToDevice maps a user-space point of line i to device space. The user
// origin is the line's alignment anchor on the baseline.
func (t Text) ToDevice(line int, ux, uy float64) (float64, float64) {
	sx, sy := t.scale()
	return t.X + ux*sx, t.Y + float64(line)*t.LineHeight + uy*sy
}
