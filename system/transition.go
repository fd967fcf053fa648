package system

import (
	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
	"github.com/lixenwraith/gridstrike/parameter"
)

// TransitionSystem is the stage transition state machine:
// none→pending→grace→none for promotions, an immediate decrement for
// demotions. It is the only writer of the session's level
type TransitionSystem struct {
	world *engine.World

	enabled bool
}

// NewTransitionSystem creates a new transition system
func NewTransitionSystem(world *engine.World) engine.System {
	s := &TransitionSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for a new match
func (s *TransitionSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *TransitionSystem) Name() string {
	return "transition"
}

// Priority returns the system's priority (runs first: the lock countdown
// is authoritative for the rest of the tick)
func (s *TransitionSystem) Priority() int {
	return parameter.PriorityTransition
}

// EventTypes returns the event types TransitionSystem handles
func (s *TransitionSystem) EventTypes() []event.Type {
	return []event.Type{
		event.EventMatchReset,
		event.EventPromotionRequested,
		event.EventPromotionCancelled,
		event.EventDemotionRequested,
	}
}

// HandleEvent processes promotion and demotion requests
func (s *TransitionSystem) HandleEvent(ev event.Event) {
	if ev.Type == event.EventMatchReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	sess := s.world.Session
	switch ev.Type {
	case event.EventPromotionRequested:
		if sess.Transition != engine.TransitionNone {
			return
		}
		if payload, ok := ev.Payload.(*event.PromotionPayload); ok {
			sess.Transition = engine.TransitionPending
			sess.TransitionTarget = parameter.ClampLevel(payload.To)
			sess.TransitionElapsed = 0
			sess.PendingDuration = parameter.Level(sess.Level).PendingDuration
		}

	case event.EventPromotionCancelled:
		if sess.Transition == engine.TransitionPending {
			sess.Transition = engine.TransitionNone
			sess.TransitionTarget = 0
			sess.TransitionElapsed = 0
		}

	case event.EventDemotionRequested:
		if payload, ok := ev.Payload.(*event.DemotionPayload); ok {
			s.demote(payload.To)
		}
	}
}

// Update advances the lock, ease, pending and grace timers
func (s *TransitionSystem) Update() {
	if !s.enabled {
		return
	}

	sess := s.world.Session
	if sess.Ended {
		return
	}

	dt := s.world.Time.Delta

	// The ease timer runs independently of the transition lock
	if sess.EaseActive {
		sess.EaseElapsed += dt
		if sess.EaseElapsed >= sess.EaseDuration {
			sess.EaseActive = false
		}
	}

	if sess.LockRemaining > 0 {
		sess.LockRemaining -= dt
		if sess.LockRemaining < 0 {
			sess.LockRemaining = 0
		}
		// Pending and grace windows hold while the notice is up
		return
	}

	switch sess.Transition {
	case engine.TransitionPending:
		sess.TransitionElapsed += dt
		if sess.TransitionElapsed >= sess.PendingDuration {
			s.commit()
		}

	case engine.TransitionGrace:
		sess.TransitionElapsed += dt
		if sess.TransitionElapsed >= parameter.Level(sess.Level).GraceDuration {
			sess.Transition = engine.TransitionNone
			sess.TransitionElapsed = 0
			s.world.PushEvent(event.EventGraceEnded, &event.LevelCommittedPayload{
				Level: sess.Level,
			})
		}
	}
}

// commit performs the level change at pending-window expiry: resets the
// time bank to the new level's start, clears the board, opens the
// transition lock and the grace window, and arms level-entry easing
func (s *TransitionSystem) commit() {
	sess := s.world.Session
	old := sess.Level

	sess.Level = parameter.ClampLevel(sess.TransitionTarget)
	spec := parameter.Level(sess.Level)

	sess.TimeBank = min(spec.TimeBankStart, parameter.TimeBankMax)
	sess.TierProgress = 0

	s.world.Targets.Clear()
	s.world.RebuildGrid()

	sess.Transition = engine.TransitionGrace
	sess.TransitionTarget = 0
	sess.TransitionElapsed = 0
	sess.LockRemaining = parameter.TransitionLockDuration

	if sess.Level > old && spec.EaseDuration > 0 {
		sess.EaseActive = true
		sess.EaseElapsed = 0
		sess.EaseDuration = spec.EaseDuration
		sess.EasePrevLevel = old
	}

	s.world.PushEvent(event.EventLevelCommitted, &event.LevelCommittedPayload{
		Level: sess.Level,
	})
}

// demote applies the immediate decrement path: no pending window, no lock,
// no grace. The board clears because the grid geometry shrinks
func (s *TransitionSystem) demote(to int) {
	sess := s.world.Session
	old := sess.Level

	sess.Level = parameter.ClampLevel(to)
	if sess.Level == old {
		return
	}

	s.world.Targets.Clear()
	s.world.RebuildGrid()

	s.world.PushEvent(event.EventDemoted, &event.DemotionPayload{
		From: old,
		To:   sess.Level,
	})
}
