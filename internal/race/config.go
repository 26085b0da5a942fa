package race

import (
	"fmt"
	"math"

	"robotrace/internal/track"
)

// Race defaults.
const (
	DefaultProximity = 4.0  // distance below which two robots contend for a lane
	DefaultBaseSpeed = 0.05 // track laps per second per unit of pace
	DefaultPaceStep  = 1.0  // pace added per robot index
	DefaultPaceBase  = 0.2  // pace of robot 0
)

// Config tunes the per-frame driver and the lane scheduler. It is passed by
// value and not changed once a race is running.
type Config struct {
	// ProximityThreshold is the distance under which robots are considered
	// at risk of colliding.
	ProximityThreshold float64
	// BaseSpeed scales a robot's pace into laps per unit of animation time.
	BaseSpeed float64
	// LaneChangeCooldown is the minimum animation time between two voluntary
	// lane changes of the same robot. Zero disables debouncing.
	LaneChangeCooldown float64
	// SampleInterval, when positive, resolves lanes by interpolating points
	// precomputed at this interval instead of evaluating the curve directly.
	SampleInterval float64
}

// DefaultConfig returns the stock race settings.
func DefaultConfig() Config {
	return Config{
		ProximityThreshold: DefaultProximity,
		BaseSpeed:          DefaultBaseSpeed,
	}
}

func (c Config) Validate() error {
	switch {
	case !(c.ProximityThreshold > 0):
		return fmt.Errorf("%w: proximity threshold %v must be positive", track.ErrConfiguration, c.ProximityThreshold)
	case math.IsNaN(c.BaseSpeed) || math.IsInf(c.BaseSpeed, 0):
		return fmt.Errorf("%w: base speed %v must be finite", track.ErrConfiguration, c.BaseSpeed)
	case c.LaneChangeCooldown < 0 || math.IsNaN(c.LaneChangeCooldown):
		return fmt.Errorf("%w: lane change cooldown %v must be non-negative", track.ErrConfiguration, c.LaneChangeCooldown)
	case c.SampleInterval < 0 || c.SampleInterval >= 1 || math.IsNaN(c.SampleInterval):
		return fmt.Errorf("%w: sample interval %v must be in [0, 1)", track.ErrConfiguration, c.SampleInterval)
	}
	return nil
}
