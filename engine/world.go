package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/gridstrike/core"
	"github.com/lixenwraith/gridstrike/event"
	"github.com/lixenwraith/gridstrike/parameter"
)

// AppearanceFunc optionally supplies an opaque skin token for a newly
// spawned target. The core never interprets the token
type AppearanceFunc func() string

// TickTime is the timing view systems read during Update
type TickTime struct {
	// Delta is the capped simulated-time advance of the current tick
	Delta time.Duration

	// Now is total elapsed simulated time
	Now time.Duration
}

// World wires the session state, the active target set and the systems into
// one single-threaded cooperative engine. One Advance call per frame; input
// resolutions apply synchronously between ticks
type World struct {
	Session *Session
	Targets *TargetStore
	Grid    *Grid
	Rand    Rand
	Time    TickTime

	Appearance AppearanceFunc

	clock   *SessionClock
	queue   *event.Queue
	systems []System
	routes  map[event.Type][]System

	paused bool
}

// NewWorld creates a world at level 1. The level table is validated here;
// a broken table is a programming error and panics
func NewWorld(rng Rand) *World {
	if err := parameter.ValidateLevels(); err != nil {
		panic(fmt.Sprintf("level table invalid: %v", err))
	}

	spec := parameter.Level(parameter.MinLevel)
	return &World{
		Session: NewSession(),
		Targets: NewTargetStore(),
		Grid:    NewGrid(spec.Rows, spec.Cols),
		Rand:    rng,
		clock:   NewSessionClock(),
		queue:   event.NewQueue(),
		routes:  make(map[event.Type][]System),
	}
}

// AddSystem registers a system and keeps the list priority-sorted
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	for _, t := range s.EventTypes() {
		w.routes[t] = append(w.routes[t], s)
	}
}

// PushEvent queues a game event for dispatch after the system pass
func (w *World) PushEvent(t event.Type, payload any) {
	w.queue.Push(t, payload)
}

// Advance moves simulated time forward by a capped delta, runs every system
// in priority order, settles the event queue and returns the tick's events
// for the presentation sink. Paused or finished sessions drop the tick
func (w *World) Advance(delta time.Duration) []event.Event {
	if w.paused || w.Session.Ended {
		return nil
	}

	dt := w.clock.Advance(delta)
	if dt <= 0 {
		return nil
	}
	w.Time.Delta = dt
	w.Time.Now = w.clock.Now()

	for _, s := range w.systems {
		s.Update()
	}

	return w.dispatch()
}

// ResolveStrike applies a hit-test-resolved strike synchronously. Strikes
// during pause, lock or after match end have no effect
func (w *World) ResolveStrike(id core.Entity) []event.Event {
	if w.paused || w.Session.Ended || w.Session.Locked() {
		return nil
	}
	w.queue.Push(event.EventStrikeRequest, &event.StrikeRequestPayload{Target: id})
	return w.dispatch()
}

// ResolveMiss applies an explicit empty-cell input synchronously
func (w *World) ResolveMiss() []event.Event {
	if w.paused || w.Session.Ended || w.Session.Locked() {
		return nil
	}
	w.queue.Push(event.EventEmptyStrikeRequest, nil)
	return w.dispatch()
}

// Pause stops delta accumulation; paused ticks are dropped, not queued
func (w *World) Pause() {
	w.paused = true
}

// Resume re-enables ticking
func (w *World) Resume() {
	w.paused = false
}

// IsPaused reports pause state
func (w *World) IsPaused() bool {
	return w.paused
}

// Now returns total elapsed simulated time
func (w *World) Now() time.Duration {
	return w.clock.Now()
}

// RebuildGrid recomputes the cell layout for the session's current level.
// Called by the transition system when level geometry changes
func (w *World) RebuildGrid() {
	spec := parameter.Level(w.Session.Level)
	w.Grid = NewGrid(spec.Rows, spec.Cols)
}

// Reset starts a new match: fresh session, zeroed clock, empty target set.
// Systems re-Init through EventMatchReset
func (w *World) Reset() []event.Event {
	w.Session = NewSession()
	w.Targets.Clear()
	w.clock.Reset()
	w.Time = TickTime{}
	w.paused = false
	w.RebuildGrid()
	w.queue.Push(event.EventMatchReset, nil)
	return w.dispatch()
}

// dispatch routes queued events to subscribed systems until the queue
// settles, returning everything that fired
func (w *World) dispatch() []event.Event {
	var all []event.Event
	for w.queue.Len() > 0 {
		batch := w.queue.Drain()
		for _, ev := range batch {
			for _, s := range w.routes[ev.Type] {
				s.HandleEvent(ev)
			}
		}
		all = append(all, batch...)
	}
	return all
}
