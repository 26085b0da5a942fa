package track

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bezier is a closed track made of cubic Bezier segments. Every group of four
// control points (start, two handles, end) is one segment, and each segment
// covers an equal share of the parameter domain. Adjoining segments are
// expected to share their end and start points; tangents may jump there.
type Bezier struct {
	points   []r3.Vec
	segments int
}

// NewBezier builds a track from a flat control point list whose length must be
// a positive multiple of four.
func NewBezier(points []r3.Vec) (*Bezier, error) {
	if len(points) == 0 || len(points)%4 != 0 {
		return nil, fmt.Errorf("%w: bezier needs a positive multiple of 4 control points, got %d",
			ErrConfiguration, len(points))
	}
	cp := make([]r3.Vec, len(points))
	copy(cp, points)
	return &Bezier{points: cp, segments: len(cp) / 4}, nil
}

// Segments returns the number of cubic segments.
func (b *Bezier) Segments() int { return b.segments }

// ControlPoints returns a copy of the control points.
func (b *Bezier) ControlPoints() []r3.Vec {
	cp := make([]r3.Vec, len(b.points))
	copy(cp, b.points)
	return cp
}

// SampleInterval is one step per control point.
func (b *Bezier) SampleInterval() float64 { return 1 / float64(len(b.points)) }

// locate maps t to a segment's four control points and the local parameter u.
func (b *Bezier) locate(t float64) (p0, p1, p2, p3 r3.Vec, u float64) {
	f := Wrap(t) * float64(b.segments)
	s := int(math.Floor(f))
	if s < 0 {
		s = 0
	}
	if s > b.segments-1 {
		s = b.segments - 1
	}
	u = f - float64(s)
	q := b.points[4*s : 4*s+4]
	return q[0], q[1], q[2], q[3], u
}

// Point evaluates the cubic Bernstein basis on the selected segment.
func (b *Bezier) Point(t float64) r3.Vec {
	p0, p1, p2, p3, u := b.locate(t)
	v := 1 - u
	p := r3.Scale(v*v*v, p0)
	p = r3.Add(p, r3.Scale(3*u*v*v, p1))
	p = r3.Add(p, r3.Scale(3*u*u*v, p2))
	return r3.Add(p, r3.Scale(u*u*u, p3))
}

// Tangent evaluates the derivative of the segment basis and normalizes it.
func (b *Bezier) Tangent(t float64) (r3.Vec, error) {
	p0, p1, p2, p3, u := b.locate(t)
	v := 1 - u
	d := r3.Scale(-3*v*v, p0)
	d = r3.Add(d, r3.Scale(3*v*v-6*u*v, p1))
	d = r3.Add(d, r3.Scale(6*u*v-3*u*u, p2))
	d = r3.Add(d, r3.Scale(3*u*u, p3))
	return unit(d, Wrap(t))
}
