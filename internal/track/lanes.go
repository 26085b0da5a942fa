package track

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// LaneGeometry places points and directions on a lane of the active track.
// Renderers and the race driver depend on this rather than on a concrete
// resolver, so the sampled variant can be swapped in.
type LaneGeometry interface {
	LanePoint(lane int, t float64) (r3.Vec, error)
	LaneTangent(lane int, t float64) (r3.Vec, error)
	Config() Config
}

// Resolver offsets a curve's centerline into parallel lanes along the in-plane
// normal. Tracks must be planar: the normal is the tangent crossed with the
// configured up axis.
type Resolver struct {
	curve Curve
	cfg   Config
}

// NewResolver returns a resolver for curve using cfg.
func NewResolver(curve Curve, cfg Config) (*Resolver, error) {
	if curve == nil {
		return nil, fmt.Errorf("%w: nil curve", ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{curve: curve, cfg: cfg}, nil
}

func (r *Resolver) Curve() Curve   { return r.curve }
func (r *Resolver) Config() Config { return r.cfg }

// Normal returns the unit in-plane normal at t. For a counter-clockwise track
// it points away from the inside of the loop.
func (r *Resolver) Normal(t float64) (r3.Vec, error) {
	tan, err := r.curve.Tangent(t)
	if err != nil {
		return r3.Vec{}, err
	}
	return unit(r3.Cross(tan, r.cfg.Up), Wrap(t))
}

// offset is the signed distance of a lane center from the centerline.
func (r *Resolver) offset(lane int) float64 {
	return (float64(lane)+0.5)*r.cfg.LaneWidth - r.cfg.TotalWidth()/2
}

func (r *Resolver) checkLane(lane int) error {
	if lane < 0 || lane >= r.cfg.LaneCount {
		return &InvalidLaneError{Lane: lane, Count: r.cfg.LaneCount}
	}
	return nil
}

// LanePoint returns the center of lane at t. Lanes are counted from the inner
// edge of the track.
func (r *Resolver) LanePoint(lane int, t float64) (r3.Vec, error) {
	if err := r.checkLane(lane); err != nil {
		return r3.Vec{}, err
	}
	n, err := r.Normal(t)
	if err != nil {
		return r3.Vec{}, err
	}
	return r3.Add(r.curve.Point(t), r3.Scale(r.offset(lane), n)), nil
}

// LaneTangent returns the unit direction of travel along lane at t.
//
// The direction is the finite difference between the lane points at t and
// t+TangentStep. On sections where the lane offset exceeds the radius of
// curvature the offset path runs backwards, so the difference is flipped
// whenever it opposes the centerline's direction of travel.
func (r *Resolver) LaneTangent(lane int, t float64) (r3.Vec, error) {
	w := Wrap(t)
	a, err := r.LanePoint(lane, w)
	if err != nil {
		return r3.Vec{}, err
	}
	b, err := r.LanePoint(lane, w+r.cfg.TangentStep)
	if err != nil {
		return r3.Vec{}, err
	}
	d, err := unit(r3.Sub(b, a), w)
	if err != nil {
		return r3.Vec{}, err
	}
	fwd, err := r.curve.Tangent(w)
	if err != nil {
		return r3.Vec{}, err
	}
	return orient(d, fwd), nil
}

// Edges returns the inner and outer boundary of the track at t.
func (r *Resolver) Edges(t float64) (inner, outer r3.Vec, err error) {
	n, err := r.Normal(t)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	p := r.curve.Point(t)
	half := r.cfg.TotalWidth() / 2
	return r3.Sub(p, r3.Scale(half, n)), r3.Add(p, r3.Scale(half, n)), nil
}

// orient flips d when it points against fwd.
func orient(d, fwd r3.Vec) r3.Vec {
	if r3.Dot(d, fwd) < 0 {
		return r3.Scale(-1, d)
	}
	return d
}
