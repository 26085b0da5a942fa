package race

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"robotrace/internal/track"
)

// ChangeReason says why a robot changed lanes.
type ChangeReason int

const (
	// ReasonMerge is a voluntary move one lane inwards.
	ReasonMerge ChangeReason = iota
	// ReasonYield is a forced move one lane outwards to clear a robot in the
	// same lane.
	ReasonYield
)

func (r ChangeReason) String() string {
	if r == ReasonYield {
		return "yield"
	}
	return "merge"
}

// LaneChange records one lane transition applied by the scheduler.
type LaneChange struct {
	Robot    int
	From, To int
	Reason   ChangeReason
}

// Scheduler assigns lanes once per frame with a greedy single pass.
//
// Robots are visited in ascending index order. Each robot moves one lane
// inwards unless a nearby robot occupies that lane; a nearby robot in the same
// lane forces the higher-indexed (faster) of the two one lane outwards.
// Distances come from the positions computed for this frame; lanes changed
// during the pass take effect on positions only on the next frame. The result
// depends on index order and favors lower-indexed robots.
type Scheduler struct {
	threshold float64
	cooldown  float64
	laneCount int
}

// NewScheduler returns a scheduler for laneCount lanes.
func NewScheduler(cfg Config, laneCount int) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if laneCount <= 0 {
		return nil, fmt.Errorf("%w: lane count %d must be positive", track.ErrConfiguration, laneCount)
	}
	return &Scheduler{
		threshold: cfg.ProximityThreshold,
		cooldown:  cfg.LaneChangeCooldown,
		laneCount: laneCount,
	}, nil
}

// Step runs one scheduling pass at animation time now and returns the lane
// changes it applied, in order. Lanes never leave [0, laneCount-1]: a robot
// already in the outermost lane is not pushed further.
func (s *Scheduler) Step(robots []*Robot, now float64) ([]LaneChange, error) {
	pos := make([]r3.Vec, len(robots))
	for i, r := range robots {
		pos[i] = r.Position
	}

	var changes []LaneChange
	move := func(i, to int, reason ChangeReason) {
		r := robots[i]
		changes = append(changes, LaneChange{Robot: i, From: r.Lane, To: to, Reason: reason})
		r.Lane = to
		r.LastLaneChange = now
	}

	for i, ri := range robots {
		canMoveLeft := ri.Lane > 0
		for j, rj := range robots {
			if i == j {
				continue
			}
			d := r3.Norm(r3.Sub(pos[i], pos[j]))
			if math.IsNaN(d) {
				return changes, fmt.Errorf("%w: distance between robots %d and %d is NaN", track.ErrConfiguration, i, j)
			}
			if d >= s.threshold {
				continue
			}
			if ri.Lane-1 == rj.Lane {
				canMoveLeft = false
			}
			if ri.Lane == rj.Lane {
				k := max(i, j)
				if to := robots[k].Lane + 1; to < s.laneCount {
					move(k, to, ReasonYield)
				}
			}
		}
		if canMoveLeft && !s.coolingDown(ri, now) {
			move(i, ri.Lane-1, ReasonMerge)
		}
	}
	return changes, nil
}

func (s *Scheduler) coolingDown(r *Robot, now float64) bool {
	return s.cooldown > 0 && now-r.LastLaneChange < s.cooldown
}
