package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"robotrace/internal/race"
)

func TestEventBus(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	var order []string
	bus.Subscribe(EventLaneChange, func(e Event) { order = append(order, "first:"+e.Change.Reason.String()) })
	bus.Subscribe(EventLaneChange, func(e Event) { order = append(order, "second") })
	bus.Subscribe(EventTrackSwitched, func(Event) { order = append(order, "track") })

	bus.Emit(Event{Type: EventLaneChange, Change: race.LaneChange{Reason: race.ReasonYield}})
	assert.Equal(t, []string{"first:yield", "second"}, order)

	bus.Emit(Event{Type: EventPaused})
	assert.Len(t, order, 2)
}

func TestMaterialColor(t *testing.T) {
	t.Parallel()

	seen := map[RGB]race.Material{}
	for _, m := range []race.Material{race.Gold, race.Silver, race.Wood, race.Orange} {
		c := MaterialColor(m)
		_, dup := seen[c]
		assert.False(t, dup, "%s shares a colour", m)
		seen[c] = m
	}
	assert.Equal(t, Palette.Orange, MaterialColor(race.Orange))

	c := RGB{R: 200, G: 100, B: 50}
	assert.Equal(t, c, c.Mul(255))
	assert.Equal(t, RGB{}, c.Mul(0))
}
