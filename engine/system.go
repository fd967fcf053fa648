package engine

import "github.com/lixenwraith/gridstrike/event"

// System is one update-ordered component of the session engine
type System interface {
	// Name identifies the system in diagnostics
	Name() string

	// Priority orders execution within a tick (lower runs first)
	Priority() int

	// Update advances the system by the tick delta in World.Time
	Update()

	// EventTypes lists the events routed to HandleEvent
	EventTypes() []event.Type

	// HandleEvent processes one routed event
	HandleEvent(ev event.Event)
}
