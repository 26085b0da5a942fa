package track

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Lane layout shared by every track.
const (
	DefaultLaneWidth   = 1.22
	DefaultLaneCount   = 4
	DefaultTangentStep = 1e-3
)

// Sampling interval used when a curve does not publish its own.
const DefaultSampleInterval = 1.0 / 50

// Up is the world vertical axis; tracks lie in planes perpendicular to it.
var Up = r3.Vec{X: 0, Y: 0, Z: 1}

// Config holds the fixed lane geometry. It is passed by value and never
// mutated after startup.
type Config struct {
	LaneWidth   float64 // width of a single lane
	LaneCount   int     // number of parallel lanes, lane 0 innermost
	Up          r3.Vec  // vertical axis used for the in-plane normal
	TangentStep float64 // finite-difference step for lane tangents
}

// DefaultConfig returns the standard four-lane layout.
func DefaultConfig() Config {
	return Config{
		LaneWidth:   DefaultLaneWidth,
		LaneCount:   DefaultLaneCount,
		Up:          Up,
		TangentStep: DefaultTangentStep,
	}
}

// TotalWidth is the width of the whole track, edge to edge.
func (c Config) TotalWidth() float64 {
	return float64(c.LaneCount) * c.LaneWidth
}

// Validate reports whether the configuration can drive a resolver.
func (c Config) Validate() error {
	switch {
	case !(c.LaneWidth > 0):
		return fmt.Errorf("%w: lane width %v must be positive", ErrConfiguration, c.LaneWidth)
	case c.LaneCount <= 0:
		return fmt.Errorf("%w: lane count %d must be positive", ErrConfiguration, c.LaneCount)
	case !(c.TangentStep > 0) || c.TangentStep >= 1:
		return fmt.Errorf("%w: tangent step %v must be in (0, 1)", ErrConfiguration, c.TangentStep)
	case r3.Norm(c.Up) == 0:
		return fmt.Errorf("%w: up axis is zero", ErrConfiguration)
	}
	return nil
}
