package track

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SampledResolver precomputes lane points at a fixed interval and answers
// queries by linear interpolation between the two nearest samples. It trades
// curvature accuracy for speed and is only suitable when the interval is
// small relative to the track's curvature.
type SampledResolver struct {
	base    *Resolver
	n       int
	samples [][]r3.Vec // [lane][sample]
}

// NewSampledResolver samples every lane of base. A non-positive interval uses
// the curve's own sampling interval. The interval is rounded so that a whole
// number of samples covers the loop.
func NewSampledResolver(base *Resolver, interval float64) (*SampledResolver, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: nil resolver", ErrConfiguration)
	}
	if interval <= 0 {
		interval = sampleInterval(base.curve)
	}
	n := int(math.Round(1 / interval))
	if n < 3 {
		return nil, fmt.Errorf("%w: sampling interval %v leaves fewer than 3 samples", ErrConfiguration, interval)
	}

	cfg := base.Config()
	samples := make([][]r3.Vec, cfg.LaneCount)
	for lane := range samples {
		row := make([]r3.Vec, n)
		for k := range row {
			p, err := base.LanePoint(lane, float64(k)/float64(n))
			if err != nil {
				return nil, fmt.Errorf("sample lane %d: %w", lane, err)
			}
			row[k] = p
		}
		samples[lane] = row
	}
	return &SampledResolver{base: base, n: n, samples: samples}, nil
}

func (s *SampledResolver) Config() Config { return s.base.Config() }

// Interval is the parameter distance between adjacent samples.
func (s *SampledResolver) Interval() float64 { return 1 / float64(s.n) }

// bracket returns the samples on either side of t and the fraction between them.
func (s *SampledResolver) bracket(lane int, t float64) (a, b r3.Vec, frac float64, err error) {
	if err := s.base.checkLane(lane); err != nil {
		return r3.Vec{}, r3.Vec{}, 0, err
	}
	f := Wrap(t) * float64(s.n)
	k := int(math.Floor(f))
	if k > s.n-1 {
		k = s.n - 1
	}
	row := s.samples[lane]
	return row[k], row[(k+1)%s.n], f - float64(k), nil
}

func (s *SampledResolver) LanePoint(lane int, t float64) (r3.Vec, error) {
	a, b, frac, err := s.bracket(lane, t)
	if err != nil {
		return r3.Vec{}, err
	}
	return r3.Add(a, r3.Scale(frac, r3.Sub(b, a))), nil
}

// LaneTangent is the direction of the sampled chord containing t, oriented
// along the centerline's direction of travel.
func (s *SampledResolver) LaneTangent(lane int, t float64) (r3.Vec, error) {
	a, b, _, err := s.bracket(lane, t)
	if err != nil {
		return r3.Vec{}, err
	}
	w := Wrap(t)
	d, err := unit(r3.Sub(b, a), w)
	if err != nil {
		return r3.Vec{}, err
	}
	fwd, err := s.base.curve.Tangent(w)
	if err != nil {
		return r3.Vec{}, err
	}
	return orient(d, fwd), nil
}
