package game

import "robotrace/internal/race"

type EventType int

const (
	EventLaneChange EventType = iota
	EventTrackSwitched
	EventPaused
	EventResumed
)

type Event struct {
	Type   EventType
	X, Y   float64         // world position of the robot involved, if any
	Change race.LaneChange // EventLaneChange
	Track  int             // EventTrackSwitched: new catalog index
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
