package track

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Curve is a closed track centerline over the cyclic parameter domain [0, 1).
// Implementations wrap t before evaluating, so any real t is accepted.
type Curve interface {
	// Point returns the centerline position at t.
	Point(t float64) r3.Vec
	// Tangent returns the unit direction of travel at t. A zero-length
	// derivative yields ErrDegenerateGeometry and a zero vector.
	Tangent(t float64) (r3.Vec, error)
}

// Sampler is implemented by curves that know a sensible interval for
// precomputing or drawing points along them.
type Sampler interface {
	SampleInterval() float64
}

// Wrap maps t into [0, 1). Negative values wrap to their positive residue and
// t == 1 maps to 0.
func Wrap(t float64) float64 {
	w := math.Mod(t, 1)
	if w < 0 {
		w++
	}
	// -tiny + 1 rounds to exactly 1.
	if w >= 1 {
		w = 0
	}
	return w
}

// sampleInterval returns the curve's own interval or the default.
func sampleInterval(c Curve) float64 {
	if s, ok := c.(Sampler); ok {
		if iv := s.SampleInterval(); iv > 0 && iv < 1 {
			return iv
		}
	}
	return DefaultSampleInterval
}

// unit normalizes d, rejecting vectors too short to carry a direction.
func unit(d r3.Vec, t float64) (r3.Vec, error) {
	n := r3.Norm(d)
	if n < 1e-12 || math.IsNaN(n) || math.IsInf(n, 0) {
		return r3.Vec{}, fmt.Errorf("%w at t=%g", ErrDegenerateGeometry, t)
	}
	return r3.Scale(1/n, d), nil
}
