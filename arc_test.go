package textfx

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"
)

func stripes(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := h / 3; y < 2*h/3; y++ {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: 0, B: 255, A: 255})
		}
	}
	return img
}

func TestArcWarpZeroIsIdentity(t *testing.T) {
	img := stripes(64, 30)
	for _, arc := range []float64{0, -10, math.NaN()} {
		if got := ArcWarp(img, arc); got != img {
			t.Errorf("ArcWarp(%v) returned a new image", arc)
		}
	}
}

func TestArcWarpGrowsHeight(t *testing.T) {
	img := stripes(200, 60)
	out := ArcWarp(img, 100)

	if out.Rect.Dx() != 200 {
		t.Errorf("width = %d, want 200", out.Rect.Dx())
	}
	g := newArcGeometry(200, 60, 100)
	if out.Rect.Dy() != g.h1 || g.h1 <= 60 {
		t.Errorf("height = %d, want %d > 60", out.Rect.Dy(), g.h1)
	}

	// The arc bulges upward: the edge columns sit lower than the center.
	_, centerY := columnCentroid(out, 100)
	_, edgeY := columnCentroid(out, 2)
	if edgeY <= centerY+5 {
		t.Errorf("edge centroid y = %v, want well below center %v", edgeY, centerY)
	}
}

func TestArcWarpNoClipping(t *testing.T) {
	img := stripes(300, 90)
	out := ArcWarp(img, 100)
	for x := range out.Rect.Dx() {
		if a := out.RGBAAt(x, 0).A; a != 0 {
			t.Fatalf("top row pixel %d has alpha %d", x, a)
		}
		if a := out.RGBAAt(x, out.Rect.Dy()-1).A; a != 0 {
			t.Fatalf("bottom row pixel %d has alpha %d", x, a)
		}
	}
}

func TestArcGeometryRange(t *testing.T) {
	g := newArcGeometry(512, 100, 50)
	s := 50.0 / 100 * 100 * 0.35
	if math.Abs(g.radius-(512*512/(8*s)+s/2)) > 1e-9 {
		t.Errorf("radius = %v", g.radius)
	}
	// The center column is displaced by the full sagitta.
	_, _, y := g.column(256)
	if math.Abs(y+s) > 1e-9 {
		t.Errorf("center displacement = %v", y)
	}
	if g.h1 < 100 {
		t.Errorf("h1 = %d, want >= h0", g.h1)
	}
}

func TestArcWarpDeterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 257, 41))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 31)
	}
	want := ArcWarp(img, 73)
	for range 4 {
		if got := ArcWarp(img, 73); !bytes.Equal(got.Pix, want.Pix) {
			t.Fatal("ArcWarp output differs between runs")
		}
	}
}

func columnCentroid(img *image.RGBA, x int) (sum, cy float64) {
	for y := range img.Rect.Dy() {
		a := float64(img.RGBAAt(x, y).A)
		sum += a
		cy += a * (float64(y) + 0.5)
	}
	if sum > 0 {
		cy /= sum
	}
	return sum, cy
}
