// Package image provides pixel sampling helpers for premultiplied RGBA
// buffers.
package image

import (
	goimage "image"
	"math"
)

// SampleBilinear samples img at continuous pixel coordinates (x, y), where
// pixel (i, j) spans [i, i+1) x [j, j+1).
//
// Coordinates outside [0, w) x [0, h) return transparent black. Inside, the
// four neighbors at floor(x), floor(y) and their right and lower neighbors
// (clamped to the last row and column) are blended with linear weights on
// premultiplied channels.
func SampleBilinear(img *goimage.RGBA, x, y float64) (r, g, b, a byte) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if math.IsNaN(x) || math.IsNaN(y) || x < 0 || y < 0 || x >= float64(w) || y >= float64(h) {
		return 0, 0, 0, 0
	}

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := min(w-1, x0+1)
	y1 := min(h-1, y0+1)
	tx := x - float64(x0)
	ty := y - float64(y0)

	i00 := y0*img.Stride + x0*4
	i10 := y0*img.Stride + x1*4
	i01 := y1*img.Stride + x0*4
	i11 := y1*img.Stride + x1*4

	w00 := (1 - tx) * (1 - ty)
	w10 := tx * (1 - ty)
	w01 := (1 - tx) * ty
	w11 := tx * ty

	p := img.Pix
	ch := func(c int) byte {
		v := float64(p[i00+c])*w00 + float64(p[i10+c])*w10 + float64(p[i01+c])*w01 + float64(p[i11+c])*w11
		return clampByte(v)
	}
	return ch(0), ch(1), ch(2), ch(3)
}

func clampByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}
