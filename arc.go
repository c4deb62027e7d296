package textfx

import (
	"image"
	"math"

	imgutil "github.com/gogpu/textfx/internal/image"
	"github.com/gogpu/textfx/internal/parallel"
)

// arcSinLimit keeps asin away from ±1, where the slice rotation degenerates.
const arcSinLimit = 0.999999

// arcGeometry is the circle an arc warp bends the image onto.
type arcGeometry struct {
	w0, h0 int
	h1     int

	// radius and the distance from the circle center to the chord.
	radius, d float64
	mid       float64
}

func newArcGeometry(w0, h0 int, arc float64) arcGeometry {
	s := arc / 100 * float64(h0) * 0.35
	w := float64(w0)
	r := w*w/math.Max(1e-6, 8*s) + s/2
	g := arcGeometry{w0: w0, h0: h0, radius: r, d: r - s}

	lo, hi := math.Inf(1), math.Inf(-1)
	step := max(1, w0/512)
	for x := 0; x < w0; x += step {
		_, _, y := g.column(float64(x) + 0.5)
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		lo, hi = -math.Abs(s), 0
	}
	g.h1 = h0 + int(math.Ceil(math.Max(0, hi-lo)))
	g.mid = (lo + hi) / 2
	return g
}

// column returns the rotation of the slice at x (pixel center) and its
// vertical displacement.
func (g arcGeometry) column(xc float64) (sinT, cosT, yArc float64) {
	sinT = math.Max(-arcSinLimit, math.Min(arcSinLimit, (xc-float64(g.w0)/2)/g.radius))
	cosT = math.Cos(math.Asin(sinT))
	return sinT, cosT, g.d - g.radius*cosT
}

// ArcWarp bends img along a circular arc. arcPct is clamped to [0, 100];
// 0 returns img itself. The result keeps the width and grows in height so
// the bent content is never clipped.
//
// Every destination pixel is mapped back into the source by rotating it
// around its column's point on the arc and sampled bilinearly. Samples
// outside the source are transparent.
func ArcWarp(img *image.RGBA, arcPct float64) *image.RGBA {
	arc := clampPct(arcPct, 0)
	if img == nil || arc <= 0 {
		return img
	}
	src := img
	if src.Rect.Min != (image.Point{}) {
		src = image.NewRGBA(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))
		for y := range src.Rect.Dy() {
			copy(src.Pix[y*src.Stride:], img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):][:src.Rect.Dx()*4])
		}
	}

	g := newArcGeometry(src.Rect.Dx(), src.Rect.Dy(), arc)
	out := image.NewRGBA(image.Rect(0, 0, g.w0, g.h1))
	halfH0 := float64(g.h0) / 2
	halfH1 := float64(g.h1) / 2

	parallel.Default().Range(g.w0, 32, func(lo, hi int) {
		for x := lo; x < hi; x++ {
			xc := float64(x) + 0.5
			sinT, cosT, yArc := g.column(xc)
			ty := halfH1 + yArc - g.mid
			for y := range g.h1 {
				dy := float64(y) + 0.5 - ty
				i := out.PixOffset(x, y)
				p := out.Pix[i : i+4 : i+4]
				p[0], p[1], p[2], p[3] = imgutil.SampleBilinear(src, xc+sinT*dy, halfH0+cosT*dy)
			}
		}
	})
	return out
}
