// Package stroke turns closed outlines into polygons covering a round-join
// stroke of a given width.
//
// The stroke is the Minkowski sum of the flattened outline with a disc of
// radius width/2: each edge becomes a quad and each vertex a disc polygon,
// all wound the same way so a nonzero fill of the result is their union.
// Glyph outlines are closed, so caps never occur.
package stroke

import "math"

// Expand returns the stroke polygons for contours at the given width. The
// disc polygons keep within tolerance of a true circle. Every polygon has
// negative signed area in a y-down space.
func Expand(contours [][]Point, width, tolerance float64) [][]Point {
	r := width / 2
	if !(r > 0) || math.IsInf(r, 1) {
		return nil
	}
	sides := discSides(r, tolerance)

	var out [][]Point
	for _, c := range contours {
		for i, p := range c {
			out = append(out, disc(p, r, sides))
			if len(c) > 1 {
				if q := band(p, c[(i+1)%len(c)], r); q != nil {
					out = append(out, q)
				}
			}
		}
	}
	return out
}

// band covers the edge p0-p1 with half-width r, vertices ordered
// p0+n, p1+n, p1-n, p0-n.
func band(p0, p1 Point, r float64) []Point {
	d := p1.sub(p0)
	l := d.hypot()
	if l < 1e-12 {
		return nil
	}
	nx, ny := -d.Y*r/l, d.X*r/l
	return []Point{
		p0.offset(nx, ny),
		p1.offset(nx, ny),
		p1.offset(-nx, -ny),
		p0.offset(-nx, -ny),
	}
}

// disc is a regular polygon inscribed in the circle, walked clockwise from
// angle 0 so its axis-aligned extremes lie exactly on the circle.
func disc(c Point, r float64, sides int) []Point {
	pts := make([]Point, sides)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / float64(sides)
		pts[i] = c.offset(r*math.Cos(a), r*math.Sin(a))
	}
	return pts
}

// discSides picks a multiple of four between 8 and 256 whose chord
// sagitta stays within tol.
func discSides(r, tol float64) int {
	if !(tol > 0) {
		tol = 0.1
	}
	n := 8
	if tol < r {
		n = int(math.Ceil(math.Pi / math.Acos(1-tol/r)))
	}
	n = (n + 3) &^ 3
	return min(max(n, 8), 256)
}
