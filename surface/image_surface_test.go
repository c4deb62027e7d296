// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/textfx/text"
)

func testText(t *testing.T, s string, size float64) Text {
	t.Helper()
	f, err := text.Lookup("Go", 900)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	return Text{
		Face:       text.NewFace(f, size),
		Lines:      []string{s},
		Align:      text.AlignCenter,
		X:          50,
		Y:          70,
		LineHeight: size * 1.05,
		ScaleX:     1,
		ScaleY:     1,
	}
}

// alphaStats returns the summed alpha and the alpha-weighted centroid.
func alphaStats(img *image.RGBA) (sum, cx, cy float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := float64(img.RGBAAt(x, y).A)
			sum += a
			cx += a * (float64(x) + 0.5)
			cy += a * (float64(y) + 0.5)
		}
	}
	if sum > 0 {
		cx /= sum
		cy /= sum
	}
	return sum, cx, cy
}

func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 40)
	defer s.Close()

	if s.Width() != 100 || s.Height() != 40 {
		t.Errorf("size = %dx%d, want 100x40", s.Width(), s.Height())
	}
}

func TestNewImageSurfaceInvalidSize(t *testing.T) {
	s := NewImageSurface(0, -3)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", s.Width(), s.Height())
	}
}

func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.Clear(color.RGBA{255, 0, 0, 255})

	if c := s.Snapshot().RGBAAt(5, 5); c != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want opaque red", c)
	}
}

func TestImageSurfaceResizeClears(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.Clear(color.White)

	if err := s.Resize(20, 5); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("size = %dx%d, want 20x5", s.Width(), s.Height())
	}
	if sum, _, _ := alphaStats(s.Snapshot()); sum != 0 {
		t.Errorf("alpha sum after resize = %v, want 0", sum)
	}
}

func TestImageSurfaceFillText(t *testing.T) {
	s := NewImageSurface(100, 100)
	tx := testText(t, "H", 60)

	s.FillText(tx, FillStyle{Color: color.Black})

	sum, cx, _ := alphaStats(s.Snapshot())
	if sum == 0 {
		t.Fatal("FillText drew nothing")
	}
	if cx < 45 || cx > 55 {
		t.Errorf("centroid x = %v, want near the center anchor 50", cx)
	}
}

func TestImageSurfaceFillTextAlign(t *testing.T) {
	tests := []struct {
		align      text.Align
		minX, maxX float64
	}{
		{text.AlignLeft, 50, 100},
		{text.AlignRight, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			s := NewImageSurface(100, 100)
			tx := testText(t, "H", 40)
			tx.Align = tt.align
			s.FillText(tx, FillStyle{Color: color.Black})

			_, cx, _ := alphaStats(s.Snapshot())
			if cx < tt.minX || cx > tt.maxX {
				t.Errorf("centroid x = %v, want within [%v, %v]", cx, tt.minX, tt.maxX)
			}
		})
	}
}

func TestImageSurfaceScaleX(t *testing.T) {
	narrow := NewImageSurface(200, 100)
	wide := NewImageSurface(200, 100)
	tx := testText(t, "H", 40)
	tx.X = 100

	narrow.FillText(tx, FillStyle{Color: color.Black})
	tx.ScaleX = 2
	wide.FillText(tx, FillStyle{Color: color.Black})

	n, _, _ := alphaStats(narrow.Snapshot())
	w, _, _ := alphaStats(wide.Snapshot())
	ratio := w / n
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("coverage ratio = %v, want 2", ratio)
	}
}

func TestImageSurfaceDestinationOutErases(t *testing.T) {
	s := NewImageSurface(100, 100)
	tx := testText(t, "H", 60)

	s.FillText(tx, FillStyle{Color: color.Black})
	before, _, _ := alphaStats(s.Snapshot())
	s.FillText(tx, FillStyle{Color: color.Black, Blend: BlendDestinationOut})
	after, _, _ := alphaStats(s.Snapshot())

	if after > before*0.15 {
		t.Errorf("alpha after erase = %v, want under 15%% of %v", after, before)
	}
}

func TestImageSurfaceStrokeText(t *testing.T) {
	fill := NewImageSurface(100, 100)
	strk := NewImageSurface(100, 100)
	tx := testText(t, "H", 60)

	fill.FillText(tx, FillStyle{Color: color.Black})
	strk.StrokeText(tx, StrokeStyle{Color: color.Black, Width: 6})

	f, _, _ := alphaStats(fill.Snapshot())
	st, _, _ := alphaStats(strk.Snapshot())
	if st == 0 {
		t.Fatal("StrokeText drew nothing")
	}

	// The stroke extends width/2 beyond the glyph on every side.
	strk.FillText(tx, FillStyle{Color: color.Black})
	both, _, _ := alphaStats(strk.Snapshot())
	if both <= f {
		t.Errorf("stroke+fill coverage %v not larger than fill %v", both, f)
	}

	zero := NewImageSurface(100, 100)
	zero.StrokeText(tx, StrokeStyle{Color: color.Black, Width: 0})
	if z, _, _ := alphaStats(zero.Snapshot()); z != 0 {
		t.Errorf("zero-width stroke coverage = %v, want 0", z)
	}
}

func TestImageSurfaceShadowOffset(t *testing.T) {
	plain := NewImageSurface(160, 160)
	shadow := NewImageSurface(160, 160)
	tx := testText(t, "H", 60)
	tx.X, tx.Y = 80, 100

	plain.FillText(tx, FillStyle{Color: color.Black})
	shadow.ShadowText(tx, Shadow{Color: color.Black, OffsetX: 10, OffsetY: 5, SigmaX: 2, SigmaY: 2})

	_, px, py := alphaStats(plain.Snapshot())
	_, sx, sy := alphaStats(shadow.Snapshot())
	if dx := sx - px; dx < 9 || dx > 11 {
		t.Errorf("shadow dx = %v, want 10", dx)
	}
	if dy := sy - py; dy < 4 || dy > 6 {
		t.Errorf("shadow dy = %v, want 5", dy)
	}
}

func TestImageSurfaceShadowTransparentColor(t *testing.T) {
	s := NewImageSurface(100, 100)
	s.ShadowText(testText(t, "H", 60), Shadow{Color: color.Transparent, SigmaX: 3, SigmaY: 3})
	if sum, _, _ := alphaStats(s.Snapshot()); sum != 0 {
		t.Errorf("transparent shadow drew %v alpha", sum)
	}
}

func TestImageSurfaceGradientPattern(t *testing.T) {
	s := NewImageSurface(100, 100)
	tx := testText(t, "H", 80)
	g := NewLinearGradient(0, 0, 100, 0, []ColorStop{
		{Offset: 0, Color: color.RGBA{255, 0, 0, 255}},
		{Offset: 1, Color: color.RGBA{0, 0, 255, 255}},
	})

	s.FillText(tx, FillStyle{Pattern: g})
	img := s.Snapshot()

	var left, right color.RGBA
	for x := 0; x < 100; x++ {
		if c := img.RGBAAt(x, 50); c.A == 255 {
			if left.A == 0 {
				left = c
			}
			right = c
		}
	}
	if left.R <= left.B {
		t.Errorf("leftmost glyph pixel = %v, want red dominant", left)
	}
	if right.B <= right.R {
		t.Errorf("rightmost glyph pixel = %v, want blue dominant", right)
	}
}

func TestImageSurfaceDrawSurface(t *testing.T) {
	dst := NewImageSurface(4, 4)
	dst.Clear(color.RGBA{0, 0, 255, 255})
	src := NewImageSurface(4, 4)
	src.Clear(color.RGBA{255, 0, 0, 255})

	dst.DrawSurface(src, BlendSourceOver)
	if c := dst.Snapshot().RGBAAt(1, 1); c != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("source-over = %v, want red", c)
	}

	dst.DrawSurface(src, BlendDestinationOut)
	if c := dst.Snapshot().RGBAAt(1, 1); c.A != 0 {
		t.Errorf("destination-out alpha = %d, want 0", c.A)
	}
}

func TestImageSurfaceWritePixels(t *testing.T) {
	s := NewImageSurface(1, 1)
	img := image.NewRGBA(image.Rect(0, 0, 7, 3))
	img.SetRGBA(6, 2, color.RGBA{1, 2, 3, 255})

	if err := s.WritePixels(img); err != nil {
		t.Fatalf("WritePixels() error = %v", err)
	}
	if s.Width() != 7 || s.Height() != 3 {
		t.Errorf("size = %dx%d, want 7x3", s.Width(), s.Height())
	}
	if c := s.Snapshot().RGBAAt(6, 2); c != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("pixel = %v, want written value", c)
	}

	img.SetRGBA(0, 0, color.RGBA{9, 9, 9, 255})
	if c := s.Snapshot().RGBAAt(0, 0); c.A != 0 {
		t.Error("WritePixels kept a reference to the caller's image")
	}

	if err := s.WritePixels(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("WritePixels(nil) error = %v, want ErrNilImage", err)
	}
	s.Close()
	if err := s.WritePixels(img); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("WritePixels after Close error = %v, want ErrSurfaceClosed", err)
	}
}

func TestLinearGradientStops(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	g := NewLinearGradient(0, 0, 10, 0, []ColorStop{
		{Offset: 0.5, Color: blue},
		{Offset: 0.5, Color: red},
		{Offset: 0, Color: red},
	})

	tests := []struct {
		name string
		x    float64
		want color.RGBA
	}{
		{"before start pads", -5, red},
		{"after end pads", 20, red},
		{"hard stop takes later color", 5, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAt(tt.x, 0); got != tt.want {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}

	if got := g.ColorAt(4, 0); got.B < 100 {
		t.Errorf("ColorAt(4) = %v, want blending toward blue", got)
	}
}
