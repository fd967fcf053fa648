package system

import (
	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
	"github.com/lixenwraith/gridstrike/parameter"
)

// TimekeeperSystem decays the time bank 1:1 with simulated time and ends
// the match when it empties. Decay suspends during the transition lock
type TimekeeperSystem struct {
	world *engine.World

	enabled bool
}

// NewTimekeeperSystem creates a new timekeeper system
func NewTimekeeperSystem(world *engine.World) engine.System {
	s := &TimekeeperSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for a new match
func (s *TimekeeperSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *TimekeeperSystem) Name() string {
	return "timekeeper"
}

// Priority returns the system's priority
func (s *TimekeeperSystem) Priority() int {
	return parameter.PriorityTimekeeper
}

// EventTypes returns the event types TimekeeperSystem handles
func (s *TimekeeperSystem) EventTypes() []event.Type {
	return []event.Type{
		event.EventMatchReset,
	}
}

// HandleEvent processes routed events
func (s *TimekeeperSystem) HandleEvent(ev event.Event) {
	if ev.Type == event.EventMatchReset {
		s.Init()
	}
}

// Update burns bank time and match time for the tick
func (s *TimekeeperSystem) Update() {
	if !s.enabled {
		return
	}

	sess := s.world.Session
	if sess.Ended || sess.Locked() {
		return
	}

	dt := s.world.Time.Delta
	sess.MatchElapsed += dt

	sess.TimeBank -= dt
	if sess.TimeBank > 0 {
		return
	}
	sess.TimeBank = 0

	// Match over: discard targets, stop future scheduling
	sess.Ended = true
	s.world.Targets.Clear()
	s.world.PushEvent(event.EventMatchEnded, &event.MatchEndedPayload{
		Score:     sess.Score,
		BestCombo: sess.BestCombo,
		Level:     sess.Level,
		Hits:      sess.TotalHits,
		Misses:    sess.TotalMisses,
		Elapsed:   sess.MatchElapsed,
	})
}
