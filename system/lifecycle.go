package system

import (
	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
	"github.com/lixenwraith/gridstrike/parameter"
)

// LifecycleSystem advances every active target's phase independently.
// Phase order is entering→exposed→(struck|exiting)→exiting→removed; the
// struck branch is entered only by the score system on a resolved hit
type LifecycleSystem struct {
	world *engine.World

	enabled bool
}

// NewLifecycleSystem creates a new lifecycle system
func NewLifecycleSystem(world *engine.World) engine.System {
	s := &LifecycleSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for a new match
func (s *LifecycleSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *LifecycleSystem) Name() string {
	return "lifecycle"
}

// Priority returns the system's priority
func (s *LifecycleSystem) Priority() int {
	return parameter.PriorityLifecycle
}

// EventTypes returns the event types LifecycleSystem handles
func (s *LifecycleSystem) EventTypes() []event.Type {
	return []event.Type{
		event.EventMatchReset,
	}
}

// HandleEvent processes routed events
func (s *LifecycleSystem) HandleEvent(ev event.Event) {
	if ev.Type == event.EventMatchReset {
		s.Init()
	}
}

// Update advances phase-elapsed time and applies due transitions.
// An exposure timeout is the observable miss event
func (s *LifecycleSystem) Update() {
	if !s.enabled {
		return
	}

	sess := s.world.Session
	if sess.Ended || sess.Locked() {
		return
	}

	dt := s.world.Time.Delta

	// Copy: removal mutates the store during iteration
	targets := make([]*component.TargetComponent, len(s.world.Targets.All()))
	copy(targets, s.world.Targets.All())

	for _, t := range targets {
		t.PhaseElapsed += dt
		s.advancePhases(t)
	}
}

// advancePhases applies every transition the accumulated elapsed time has
// earned, carrying the overshoot into the next phase
func (s *LifecycleSystem) advancePhases(t *component.TargetComponent) {
	for {
		d := t.PhaseDuration()
		if t.PhaseElapsed < d {
			return
		}

		switch t.Phase {
		case component.PhaseEntering:
			t.Phase = component.PhaseExposed
			t.PhaseElapsed -= d

		case component.PhaseExposed:
			// Never-struck exposure expiry is a miss
			t.Phase = component.PhaseExiting
			t.PhaseElapsed -= d
			s.world.PushEvent(event.EventTargetMiss, &event.TargetMissPayload{
				Target:  t.ID,
				Cell:    t.Cell,
				Timeout: true,
			})

		case component.PhaseStruck:
			t.Phase = component.PhaseExiting
			t.PhaseElapsed -= d

		case component.PhaseExiting:
			s.world.Targets.Remove(t.ID)
			s.world.PushEvent(event.EventTargetRemoved, &event.TargetRemovedPayload{
				Target: t.ID,
				Cell:   t.Cell,
			})
			return
		}
	}
}
