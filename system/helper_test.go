package system

import (
	"time"

	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
)

const testTick = 80 * time.Millisecond

// newTestWorld builds a seeded world with the full system set
func newTestWorld(seed uint64) *engine.World {
	w := engine.NewWorld(engine.NewRand(seed))
	RegisterAll(w)
	return w
}

// advanceFor drives fixed-size ticks until the given simulated duration
// has passed, collecting every event fired along the way
func advanceFor(w *engine.World, d time.Duration) []event.Event {
	var all []event.Event
	for elapsed := time.Duration(0); elapsed < d; elapsed += testTick {
		all = append(all, w.Advance(testTick)...)
	}
	return all
}

// addExposedTarget places a hittable target directly into the store,
// bypassing the scheduler
func addExposedTarget(w *engine.World, cell int, cat component.Category) *component.TargetComponent {
	t := &component.TargetComponent{
		ID:              w.Targets.NextSerial(),
		Cell:            cell,
		Category:        cat,
		Phase:           component.PhaseExposed,
		SpawnedAt:       w.Time.Now,
		EntryDuration:   300 * time.Millisecond,
		ExposedDuration: 2 * time.Second,
		StruckDuration:  300 * time.Millisecond,
		ExitDuration:    400 * time.Millisecond,
	}
	w.Targets.Add(t)
	return t
}

// countEvents tallies occurrences of one event type
func countEvents(events []event.Event, typ event.Type) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
