package game

import (
	"fmt"

	"robotrace/internal/race"
)

type SessionState int

const (
	StateRunning SessionState = iota
	StatePaused
)

func (s SessionState) String() string {
	if s == StatePaused {
		return "paused"
	}
	return "running"
}

// Session owns the animation clock and forwards race results to the event bus.
type Session struct {
	State     SessionState
	Clock     float64 // animation time fed to the race, in seconds
	TimeScale float64

	Merges int
	Yields int

	race *race.Race
	bus  *EventBus
}

func NewSession(rc *race.Race, bus *EventBus) *Session {
	if bus == nil {
		bus = NewEventBus()
	}
	return &Session{
		State:     StateRunning,
		TimeScale: 1,
		race:      rc,
		bus:       bus,
	}
}

func (s *Session) Race() *race.Race { return s.race }
func (s *Session) Bus() *EventBus   { return s.bus }

// Update advances the clock by dt wall seconds and runs one race frame.
// A paused session does nothing.
func (s *Session) Update(dt float64) error {
	if s.State != StateRunning {
		return nil
	}
	if dt < 0 {
		return fmt.Errorf("session: negative frame time %g", dt)
	}
	s.Clock += dt * s.TimeScale
	changes, err := s.race.Update(s.Clock)
	if err != nil {
		return err
	}
	robots := s.race.Robots()
	for _, c := range changes {
		switch c.Reason {
		case race.ReasonMerge:
			s.Merges++
		case race.ReasonYield:
			s.Yields++
		}
		e := Event{Type: EventLaneChange, Change: c}
		if c.Robot >= 0 && c.Robot < len(robots) {
			e.X, e.Y = robots[c.Robot].Position.X, robots[c.Robot].Position.Y
		}
		s.bus.Emit(e)
	}
	return nil
}

func (s *Session) TogglePause() {
	if s.State == StateRunning {
		s.State = StatePaused
		s.bus.Emit(Event{Type: EventPaused})
		return
	}
	s.State = StateRunning
	s.bus.Emit(Event{Type: EventResumed})
}

// NextTrack switches the race to the following catalog entry, wrapping around.
func (s *Session) NextTrack() error {
	next := (s.race.TrackIndex() + 1) % s.race.Catalog().Len()
	if err := s.race.SelectTrack(next); err != nil {
		return err
	}
	s.bus.Emit(Event{Type: EventTrackSwitched, Track: next})
	return nil
}

// ScaleTime multiplies the animation speed by k within [MinTimeScale, MaxTimeScale].
func (s *Session) ScaleTime(k float64) {
	s.TimeScale = clampF(s.TimeScale*k, MinTimeScale, MaxTimeScale)
}
