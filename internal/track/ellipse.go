package track

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ellipse is a closed-form track: an axis-aligned ellipse at constant height.
//
//	P(t) = (Rx cos 2πt, Ry sin 2πt, Height)
type Ellipse struct {
	Rx, Ry float64
	Height float64
}

// NewEllipse validates the radii and returns the curve.
func NewEllipse(rx, ry, height float64) (*Ellipse, error) {
	if !(rx > 0) || !(ry > 0) {
		return nil, fmt.Errorf("%w: ellipse radii (%v, %v) must be positive", ErrConfiguration, rx, ry)
	}
	return &Ellipse{Rx: rx, Ry: ry, Height: height}, nil
}

func (e *Ellipse) Point(t float64) r3.Vec {
	a := 2 * math.Pi * Wrap(t)
	return r3.Vec{X: e.Rx * math.Cos(a), Y: e.Ry * math.Sin(a), Z: e.Height}
}

// Tangent is the analytic derivative dP/dt, normalized.
func (e *Ellipse) Tangent(t float64) (r3.Vec, error) {
	w := Wrap(t)
	a := 2 * math.Pi * w
	d := r3.Vec{
		X: -2 * math.Pi * e.Rx * math.Sin(a),
		Y: 2 * math.Pi * e.Ry * math.Cos(a),
	}
	return unit(d, w)
}

func (e *Ellipse) SampleInterval() float64 { return DefaultSampleInterval }
