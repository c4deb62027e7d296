// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/textfx/internal/blend"
	"github.com/gogpu/textfx/internal/filter"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Glyph and stroke outlines are rasterized into an 8-bit coverage mask with
// golang.org/x/image/vector (nonzero winding, analytic anti-aliasing) and the
// mask is composited with the premultiplied blend functions of
// internal/blend.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//	s.FillText(t, surface.FillStyle{Color: color.Black})
//	img := s.Snapshot()
type ImageSurface struct {
	img    *image.RGBA
	mask   *image.Alpha
	raster vector.Rasterizer
	closed bool
}

// NewImageSurface creates a transparent surface. Dimensions below 1 are
// raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	width, height = max(1, width), max(1, height)
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width implements Surface.
func (s *ImageSurface) Width() int { return s.img.Rect.Dx() }

// Height implements Surface.
func (s *ImageSurface) Height() int { return s.img.Rect.Dy() }

// Image returns the backing image. Drawing to the surface mutates it.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Resize implements Surface.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	width, height = max(1, width), max(1, height)
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.mask = nil
	return nil
}

// Clear implements Surface.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	if c == nil {
		c = color.Transparent
	}
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// FillText implements Surface.
func (s *ImageSurface) FillText(t Text, style FillStyle) {
	if s.closed {
		return
	}
	mask := s.coverage(TextPath(t))
	if mask == nil {
		return
	}
	filter.NewBlur(style.SigmaX, style.SigmaY).Alpha(mask)

	paint := blend.Solid(premultiplied(style.Color))
	if style.Pattern != nil {
		pat := style.Pattern
		paint = func(x, y int) color.RGBA { return pat.ColorAt(float64(x)+0.5, float64(y)+0.5) }
	}
	blend.Mask(s.img, mask, paint, 255, toBlend(style.Blend))
}

// StrokeText implements Surface.
func (s *ImageSurface) StrokeText(t Text, style StrokeStyle) {
	if s.closed || style.Width <= 0 {
		return
	}
	mask := s.coverage(StrokePath(t, style.Width))
	if mask == nil {
		return
	}
	blend.Mask(s.img, mask, blend.Solid(premultiplied(style.Color)), 255, toBlend(style.Blend))
}

// ShadowText implements Surface.
func (s *ImageSurface) ShadowText(t Text, sh Shadow) {
	if s.closed {
		return
	}
	c := premultiplied(sh.Color)
	if c.A == 0 {
		return
	}
	mask := s.coverage(TextPath(t.Translate(sh.OffsetX, sh.OffsetY)))
	if mask == nil {
		return
	}
	filter.NewBlur(sh.SigmaX, sh.SigmaY).Alpha(mask)
	blend.Mask(s.img, mask, blend.Solid(c), 255, toBlend(sh.Blend))
}

// DrawSurface implements Surface.
func (s *ImageSurface) DrawSurface(src Surface, mode BlendMode) {
	if s.closed || src == nil {
		return
	}
	var img *image.RGBA
	if is, ok := src.(*ImageSurface); ok {
		img = is.img
	} else {
		img = src.Snapshot()
	}
	blend.Image(s.img, img, toBlend(mode))
}

// Snapshot implements Surface.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// WritePixels implements Surface.
func (s *ImageSurface) WritePixels(img *image.RGBA) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if img == nil {
		return ErrNilImage
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Rect, img, b.Min, draw.Src)
	s.img = out
	s.mask = nil
	return nil
}

// Close implements Surface.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

// coverage rasterizes p into the reusable mask. It returns nil for an empty
// path. Geometry outside the surface is clipped.
func (s *ImageSurface) coverage(p *Path) *image.Alpha {
	if p.Empty() {
		return nil
	}
	w, h := s.Width(), s.Height()

	if s.mask == nil || s.mask.Rect.Dx() != w || s.mask.Rect.Dy() != h {
		s.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		clear(s.mask.Pix)
	}

	s.raster.Reset(w, h)
	s.raster.DrawOp = draw.Src
	p.rasterize(&s.raster)
	s.raster.Draw(s.mask, s.mask.Rect, image.Opaque, image.Point{})
	return s.mask
}

func toBlend(m BlendMode) blend.Mode {
	switch m {
	case BlendMultiply:
		return blend.Multiply
	case BlendDestinationOut:
		return blend.DestinationOut
	case BlendDestinationOver:
		return blend.DestinationOver
	case BlendCopy:
		return blend.Source
	default:
		return blend.SourceOver
	}
}
