package stroke

import "math"

// Point is a position in the outline's coordinate space.
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point           { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) hypot() float64              { return math.Hypot(p.X, p.Y) }
func (p Point) offset(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// maxCurveSegments bounds the polyline of a single curve.
const maxCurveSegments = 128

// Outline collects contours, flattening curves as they are added. The zero
// value is not usable; create one with NewOutline.
type Outline struct {
	tol      float64
	contours [][]Point
	cur      []Point
	pen      Point
}

// NewOutline returns an Outline whose polylines stay within tolerance of
// the curves they replace. A non-positive tolerance selects 0.1.
func NewOutline(tolerance float64) *Outline {
	if !(tolerance > 0) {
		tolerance = 0.1
	}
	return &Outline{tol: tolerance}
}

// MoveTo starts a new contour, closing the current one.
func (o *Outline) MoveTo(p Point) {
	o.Close()
	o.cur = append(o.cur, p)
	o.pen = p
}

// LineTo adds a straight edge.
func (o *Outline) LineTo(p Point) {
	o.start()
	if p != o.pen {
		o.cur = append(o.cur, p)
	}
	o.pen = p
}

// QuadTo adds a quadratic Bézier edge.
func (o *Outline) QuadTo(c, p Point) {
	o.start()
	p0 := o.pen
	dd := p0.sub(c).sub(c.sub(p)).hypot()
	n := segments(dd / 4 / o.tol)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		o.cur = append(o.cur, Point{
			X: u*u*p0.X + 2*u*t*c.X + t*t*p.X,
			Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p.Y,
		})
	}
	o.pen = p
}

// CubicTo adds a cubic Bézier edge.
func (o *Outline) CubicTo(c1, c2, p Point) {
	o.start()
	p0 := o.pen
	d1 := p0.sub(c1).sub(c1.sub(c2)).hypot()
	d2 := c1.sub(c2).sub(c2.sub(p)).hypot()
	n := segments(3 * max(d1, d2) / 4 / o.tol)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		o.cur = append(o.cur, Point{
			X: a*p0.X + b*c1.X + c*c2.X + d*p.X,
			Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p.Y,
		})
	}
	o.pen = p
}

// Close ends the current contour. Closing an empty contour does nothing.
func (o *Outline) Close() {
	c := o.cur
	if n := len(c); n > 1 && c[0] == c[n-1] {
		c = c[:n-1]
	}
	if len(c) > 0 {
		o.contours = append(o.contours, c)
		o.pen = c[0]
	}
	o.cur = nil
}

// Contours closes the current contour and returns every contour so far.
func (o *Outline) Contours() [][]Point {
	o.Close()
	return o.contours
}

func (o *Outline) start() {
	if len(o.cur) == 0 {
		o.cur = append(o.cur, o.pen)
	}
}

// segments applies Wang's bound: sq is the squared segment count needed.
func segments(sq float64) int {
	n := math.Ceil(math.Sqrt(sq))
	switch {
	case !(n >= 1):
		return 1
	case n > maxCurveSegments:
		return maxCurveSegments
	}
	return int(n)
}
