package race

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Material is the finish a robot is drawn with.
type Material int

const (
	Gold Material = iota
	Silver
	Wood
	Orange
)

func (m Material) String() string {
	switch m {
	case Gold:
		return "gold"
	case Silver:
		return "silver"
	case Wood:
		return "wood"
	case Orange:
		return "orange"
	}
	return "unknown"
}

// Robot is one competitor. Position, Direction and Lane are rewritten every
// frame and read by renderers after the update.
type Robot struct {
	Name     string
	Material Material
	// Pace is the robot's speed relative to the race's base speed.
	Pace float64

	Position  r3.Vec
	Direction r3.Vec // unit direction of travel
	Lane      int

	// LastLaneChange is the animation time of the robot's most recent lane
	// change.
	LastLaneChange float64
}

// NewRobot returns a robot facing +X in lane that has never changed lanes.
func NewRobot(name string, m Material, lane int, pace float64) *Robot {
	return &Robot{
		Name:           name,
		Material:       m,
		Pace:           pace,
		Direction:      r3.Vec{X: 1},
		Lane:           lane,
		LastLaneChange: math.Inf(-1),
	}
}

// DefaultRobots returns the four stock competitors, one per lane, each faster
// than the one before.
func DefaultRobots() []*Robot {
	mats := []Material{Gold, Silver, Wood, Orange}
	robots := make([]*Robot, len(mats))
	for i, m := range mats {
		robots[i] = NewRobot(m.String(), m, i, DefaultPaceBase+DefaultPaceStep*float64(i))
	}
	return robots
}
