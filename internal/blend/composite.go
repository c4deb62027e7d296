package blend

import (
	"image"
	"image/color"
)

// Image composites src onto dst with mode. Both images must share the same
// bounds origin; the overlapping rectangle is processed.
func Image(dst, src *image.RGBA, mode Mode) {
	if dst == nil || src == nil {
		return
	}
	r := dst.Rect.Intersect(src.Rect)
	if r.Empty() {
		return
	}
	fn := Get(mode)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			s := src.Pix[si : si+4 : si+4]
			if s[3] != 0 || mode == Source || mode == DestinationIn {
				d := dst.Pix[di : di+4 : di+4]
				d[0], d[1], d[2], d[3] = fn(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
			}
			di += 4
			si += 4
		}
	}
}

// Paint returns the premultiplied color of a paint at a pixel center.
type Paint func(x, y int) color.RGBA

// Mask composites paint onto dst through an 8-bit coverage mask.
// Coverage is multiplied by alpha (0..255) before blending.
func Mask(dst *image.RGBA, mask *image.Alpha, paint Paint, alpha byte, mode Mode) {
	if dst == nil || mask == nil || paint == nil || alpha == 0 {
		return
	}
	r := dst.Rect.Intersect(mask.Rect)
	fn := Get(mode)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := mask.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := mask.Pix[mi]
			if alpha != 255 {
				cov = mulDiv255(cov, alpha)
			}
			if cov != 0 {
				c := paint(x, y)
				sr, sg, sb, sa := mulDiv255(c.R, cov), mulDiv255(c.G, cov), mulDiv255(c.B, cov), mulDiv255(c.A, cov)
				d := dst.Pix[di : di+4 : di+4]
				d[0], d[1], d[2], d[3] = fn(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
			}
			mi++
			di += 4
		}
	}
}

// Solid returns a paint of a single premultiplied color.
func Solid(c color.RGBA) Paint {
	return func(int, int) color.RGBA { return c }
}
