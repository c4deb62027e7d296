// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/textfx/internal/stroke"
	"github.com/gogpu/textfx/text"
)

// Verb is a path construction command.
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// Path is a device-space outline. Subpaths are closed implicitly when
// rasterized, matching glyph contour semantics.
type Path struct {
	verbs  []Verb
	points []float64
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, MoveTo)
	p.points = append(p.points, x, y)
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.verbs = append(p.verbs, LineTo)
	p.points = append(p.points, x, y)
}

// QuadTo adds a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.verbs = append(p.verbs, QuadTo)
	p.points = append(p.points, cx, cy, x, y)
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, CubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.verbs = append(p.verbs, Close)
}

// Empty reports whether the path has no drawing commands.
func (p *Path) Empty() bool {
	return len(p.verbs) == 0
}

// Bounds returns the bounding box of all points, or ok=false for an empty
// path.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(p.points); i += 2 {
		minX = math.Min(minX, p.points[i])
		maxX = math.Max(maxX, p.points[i])
		minY = math.Min(minY, p.points[i+1])
		maxY = math.Max(maxY, p.points[i+1])
	}
	return minX, minY, maxX, maxY, true
}

// rasterize feeds the path into r, closing every subpath.
func (p *Path) rasterize(r *vector.Rasterizer) {
	open := false
	pts := p.points
	for _, v := range p.verbs {
		switch v {
		case MoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(pts[0]), float32(pts[1]))
			pts = pts[2:]
			open = true
		case LineTo:
			r.LineTo(float32(pts[0]), float32(pts[1]))
			pts = pts[2:]
		case QuadTo:
			r.QuadTo(float32(pts[0]), float32(pts[1]), float32(pts[2]), float32(pts[3]))
			pts = pts[4:]
		case CubicTo:
			r.CubeTo(float32(pts[0]), float32(pts[1]), float32(pts[2]), float32(pts[3]), float32(pts[4]), float32(pts[5]))
			pts = pts[6:]
		case Close:
			if open {
				r.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.ClosePath()
	}
}

// TextPath returns the device-space glyph outline of t.
func TextPath(t Text) *Path {
	p := NewPath()
	if t.Face == nil {
		return p
	}
	for i, s := range t.Lines {
		line := t.Face.Line(s)
		off := t.Align.Offset(line.Advance)
		for _, seg := range line.Outline {
			var d [3][2]float64
			for j := range seg.Args {
				d[j][0], d[j][1] = t.ToDevice(i, off+seg.Args[j].X, seg.Args[j].Y)
			}
			switch seg.Op {
			case text.SegmentMoveTo:
				p.MoveTo(d[0][0], d[0][1])
			case text.SegmentLineTo:
				p.LineTo(d[0][0], d[0][1])
			case text.SegmentQuadTo:
				p.QuadTo(d[0][0], d[0][1], d[1][0], d[1][1])
			case text.SegmentCubeTo:
				p.CubicTo(d[0][0], d[0][1], d[1][0], d[1][1], d[2][0], d[2][1])
			}
		}
	}
	return p
}

// strokeTolerance is the flattening error of stroke outlines in user units.
const strokeTolerance = 0.1

// StrokePath returns the device-space area covered by stroking the glyph
// outlines of t with a round-join line of width user units. The stroke is
// expanded in user space and then scaled, so non-uniform text scaling
// stretches the stroke like the glyphs.
func StrokePath(t Text, width float64) *Path {
	p := NewPath()
	if t.Face == nil || width <= 0 {
		return p
	}
	for i, s := range t.Lines {
		line := t.Face.Line(s)
		off := t.Align.Offset(line.Advance)

		o := stroke.NewOutline(strokeTolerance)
		pt := func(q text.Point) stroke.Point { return stroke.Point{X: off + q.X, Y: q.Y} }
		for _, seg := range line.Outline {
			switch seg.Op {
			case text.SegmentMoveTo:
				o.MoveTo(pt(seg.Args[0]))
			case text.SegmentLineTo:
				o.LineTo(pt(seg.Args[0]))
			case text.SegmentQuadTo:
				o.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
			case text.SegmentCubeTo:
				o.CubicTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
			}
		}

		for _, poly := range stroke.Expand(o.Contours(), width, strokeTolerance) {
			for j, q := range poly {
				x, y := t.ToDevice(i, q.X, q.Y)
				if j == 0 {
					p.MoveTo(x, y)
				} else {
					p.LineTo(x, y)
				}
			}
			p.Close()
		}
	}
	return p
}
