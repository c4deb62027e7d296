package textfx

import (
	"context"
	"image"
	"testing"

	"github.com/gogpu/textfx/surface"
)

func newDst() *surface.ImageSurface {
	return surface.NewImageSurface(1, 1)
}

// render renders req with layers on a fresh software surface.
func render(t *testing.T, req Request, layers ...Layer) *image.RGBA {
	t.Helper()
	dst := newDst()
	size, err := NewRenderer().Render(context.Background(), dst, req, layers)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img := dst.Snapshot()
	if img.Rect.Dx() != size.Width || img.Rect.Dy() != size.Height {
		t.Fatalf("Render() size = %v, surface is %v", size, img.Rect.Size())
	}
	return img
}

func fillLayer(id, color string) Layer {
	l := NewLayer(id, TypeFill)
	l.Params = FillParams{Color: color}
	return l
}

func ptr[T any](v T) *T { return &v }

// alphaBox returns the bounds of pixels with non-zero alpha.
func alphaBox(img *image.RGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	box := image.Rectangle{Min: b.Max, Max: b.Min}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			found = true
			box.Min.X = min(box.Min.X, x)
			box.Min.Y = min(box.Min.Y, y)
			box.Max.X = max(box.Max.X, x+1)
			box.Max.Y = max(box.Max.Y, y+1)
		}
	}
	return box, found
}

// centroid returns the alpha-weighted center of img.
func centroid(img *image.RGBA) (cx, cy float64) {
	var sum float64
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := float64(img.RGBAAt(x, y).A)
			sum += a
			cx += a * (float64(x) + 0.5)
			cy += a * (float64(y) + 0.5)
		}
	}
	if sum == 0 {
		return 0, 0
	}
	return cx / sum, cy / sum
}
