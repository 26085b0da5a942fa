package race

import (
	"errors"
	"fmt"

	"robotrace/internal/track"
)

// Race drives the robots around the active track. Update is called once per
// animation frame from a single goroutine.
type Race struct {
	catalog  *track.Catalog
	trackCfg track.Config
	cfg      Config

	active int
	entry  track.Entry
	geom   track.LaneGeometry
	sched  *Scheduler

	robots  []*Robot
	clock   float64
	started bool
}

// New validates the configuration and places the race on the first track of
// catalog.
func New(catalog *track.Catalog, trackCfg track.Config, cfg Config, robots []*Robot) (*Race, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil track catalog", track.ErrConfiguration)
	}
	if err := trackCfg.Validate(); err != nil {
		return nil, err
	}
	sched, err := NewScheduler(cfg, trackCfg.LaneCount)
	if err != nil {
		return nil, err
	}
	for i, r := range robots {
		if r == nil {
			return nil, fmt.Errorf("%w: robot %d is nil", track.ErrConfiguration, i)
		}
		if r.Lane < 0 || r.Lane >= trackCfg.LaneCount {
			return nil, fmt.Errorf("robot %d: %w", i, &track.InvalidLaneError{Lane: r.Lane, Count: trackCfg.LaneCount})
		}
	}

	rc := &Race{
		catalog:  catalog,
		trackCfg: trackCfg,
		cfg:      cfg,
		sched:    sched,
		robots:   robots,
	}
	if err := rc.SelectTrack(0); err != nil {
		return nil, err
	}
	return rc, nil
}

// SelectTrack switches the active curve. Robots keep their lanes.
func (rc *Race) SelectTrack(i int) error {
	entry, err := rc.catalog.At(i)
	if err != nil {
		return err
	}
	res, err := track.NewResolver(entry.Curve, rc.trackCfg)
	if err != nil {
		return fmt.Errorf("track %q: %w", entry.Name, err)
	}
	var geom track.LaneGeometry = res
	if rc.cfg.SampleInterval > 0 {
		if geom, err = track.NewSampledResolver(res, rc.cfg.SampleInterval); err != nil {
			return fmt.Errorf("track %q: %w", entry.Name, err)
		}
	}
	rc.active, rc.entry, rc.geom = i, entry, geom
	Logger().Debug("track selected", "index", i, "name", entry.Name)
	return nil
}

// Param returns the curve parameter of robot r at animation time tAnim.
func (rc *Race) Param(r *Robot, tAnim float64) float64 {
	return track.Wrap(rc.cfg.BaseSpeed * r.Pace * tAnim)
}

// Update advances every robot to animation time tAnim, then runs the lane
// scheduler once. The clock must not run backwards.
//
// A robot whose lane geometry is degenerate at its parameter keeps its last
// position and direction for this frame. Any other error aborts the frame.
func (rc *Race) Update(tAnim float64) ([]LaneChange, error) {
	if rc.started && tAnim < rc.clock {
		return nil, fmt.Errorf("%w: animation time went backwards (%v < %v)", track.ErrConfiguration, tAnim, rc.clock)
	}
	rc.started = true
	rc.clock = tAnim

	for i, r := range rc.robots {
		if err := rc.place(r, rc.Param(r, tAnim)); err != nil {
			return nil, fmt.Errorf("robot %d: %w", i, err)
		}
	}

	changes, err := rc.sched.Step(rc.robots, tAnim)
	if err != nil {
		return changes, err
	}
	if log := Logger(); len(changes) > 0 {
		for _, c := range changes {
			log.Debug("lane change",
				"robot", rc.robots[c.Robot].Name,
				"from", c.From,
				"to", c.To,
				"reason", c.Reason.String(),
				"t", tAnim)
		}
	}
	return changes, nil
}

func (rc *Race) place(r *Robot, t float64) error {
	pos, err := rc.geom.LanePoint(r.Lane, t)
	if errors.Is(err, track.ErrDegenerateGeometry) {
		Logger().Warn("keeping last position", "robot", r.Name, "lane", r.Lane, "t", t, "err", err)
		return nil
	}
	if err != nil {
		return err
	}
	r.Position = pos

	dir, err := rc.geom.LaneTangent(r.Lane, t)
	if errors.Is(err, track.ErrDegenerateGeometry) {
		Logger().Warn("keeping last direction", "robot", r.Name, "lane", r.Lane, "t", t, "err", err)
		return nil
	}
	if err != nil {
		return err
	}
	r.Direction = dir
	return nil
}

func (rc *Race) Robots() []*Robot             { return rc.robots }
func (rc *Race) Geometry() track.LaneGeometry { return rc.geom }
func (rc *Race) Track() track.Entry           { return rc.entry }
func (rc *Race) TrackIndex() int              { return rc.active }
func (rc *Race) Catalog() *track.Catalog      { return rc.catalog }
func (rc *Race) Clock() float64               { return rc.clock }
