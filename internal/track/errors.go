package track

import (
	"errors"
	"fmt"
)

// Sentinel errors for the track package.
var (
	// ErrConfiguration is returned when a curve or resolver is built from
	// invalid parameters and cannot be used.
	ErrConfiguration = errors.New("track: invalid configuration")

	// ErrDegenerateGeometry is returned when a tangent has zero length.
	ErrDegenerateGeometry = errors.New("track: degenerate tangent")

	// ErrInvalidLane is returned for a lane index outside [0, LaneCount-1].
	ErrInvalidLane = errors.New("track: invalid lane")
)

// InvalidLaneError reports the lane that was requested and how many lanes exist.
type InvalidLaneError struct {
	Lane  int
	Count int
}

func (e *InvalidLaneError) Error() string {
	return fmt.Sprintf("track: lane %d out of range [0, %d]", e.Lane, e.Count-1)
}

func (e *InvalidLaneError) Unwrap() error { return ErrInvalidLane }
