package system

import (
	"math"

	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/core"
	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
	"github.com/lixenwraith/gridstrike/parameter"
)

// ScoreSystem converts resolved strikes and misses into score, combo and
// time bank deltas, and feeds the interval statistics the adaptation
// controller consumes each checkpoint
type ScoreSystem struct {
	world *engine.World

	enabled bool
}

// NewScoreSystem creates a new score system
func NewScoreSystem(world *engine.World) engine.System {
	s := &ScoreSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for a new match
func (s *ScoreSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *ScoreSystem) Name() string {
	return "score"
}

// Priority returns the system's priority
func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

// Update has no tick-based logic; all mutations arrive via events
func (s *ScoreSystem) Update() {
}

// EventTypes returns the event types ScoreSystem handles
func (s *ScoreSystem) EventTypes() []event.Type {
	return []event.Type{
		event.EventStrikeRequest,
		event.EventEmptyStrikeRequest,
		event.EventTargetMiss,
		event.EventMatchReset,
	}
}

// HandleEvent processes strike and miss events
func (s *ScoreSystem) HandleEvent(ev event.Event) {
	if ev.Type == event.EventMatchReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventStrikeRequest:
		if payload, ok := ev.Payload.(*event.StrikeRequestPayload); ok {
			s.resolveStrike(payload.Target)
		}

	case event.EventEmptyStrikeRequest:
		// Routed back through EventTargetMiss so every miss source shares
		// one bookkeeping path
		s.world.PushEvent(event.EventTargetMiss, &event.TargetMissPayload{
			Target: core.NoEntity,
			Cell:   -1,
		})

	case event.EventTargetMiss:
		s.registerMiss()
	}
}

// resolveStrike applies a hit against a target in a hittable phase.
// A stale identity or a wrong-phase strike is silently ignored: neither
// hit nor miss
func (s *ScoreSystem) resolveStrike(id core.Entity) {
	sess := s.world.Session
	if sess.Ended || sess.Locked() {
		return
	}

	t, ok := s.world.Targets.Get(id)
	if !ok || !t.Hittable() {
		return
	}

	now := s.world.Time.Now

	t.Phase = component.PhaseStruck
	t.PhaseElapsed = 0
	t.Struck = true

	reaction := now - t.SpawnedAt
	sess.Stats.Hits++
	sess.Stats.ReactionSum += reaction
	sess.Stats.ReactionSamples++
	sess.TotalHits++

	// Combo updates before the multiplier lookup, so the hit that reaches
	// a tier already earns its rate
	if t.Category == component.CategoryHazard {
		sess.Combo = 0
	} else {
		sess.Combo++
		if sess.Combo > sess.BestCombo {
			sess.BestCombo = sess.Combo
		}
	}

	delta := s.scoreDelta(t.Category, sess.Combo)
	sess.Score += delta
	if sess.Score < 0 {
		sess.Score = 0
	}

	switch t.Category {
	case component.CategoryHazard:
		sess.AddTime(-parameter.HazardTimePenalty)

	case component.CategoryChill:
		sess.SlowUntil = now + parameter.SlowDuration
		s.world.PushEvent(event.EventSlowApplied, &event.SlowAppliedPayload{
			Until: sess.SlowUntil,
		})
	}

	s.world.PushEvent(event.EventTargetHit, &event.TargetHitPayload{
		Target:     t.ID,
		Cell:       t.Cell,
		Category:   t.Category,
		ScoreDelta: delta,
		Combo:      sess.Combo,
		Reaction:   reaction,
	})
}

// registerMiss resets the combo and counts the miss. A miss by itself
// never carries a score or time penalty
func (s *ScoreSystem) registerMiss() {
	sess := s.world.Session
	if sess.Ended {
		return
	}
	sess.Combo = 0
	sess.Stats.Misses++
	sess.TotalMisses++
}

// scoreDelta returns the rounded per-hit score change. The combo
// multiplier applies to positive deltas only; hazard's penalty is never
// amplified
func (s *ScoreSystem) scoreDelta(cat component.Category, combo int) int {
	var base int
	switch cat {
	case component.CategoryCommon:
		base = parameter.ScoreCommon
	case component.CategoryBonus:
		base = parameter.ScoreBonus
	case component.CategoryHazard:
		base = parameter.ScoreHazard
	case component.CategoryChill:
		base = parameter.ScoreChill
	}

	if base <= 0 {
		return base
	}
	return int(math.Round(float64(base) * comboMultiplier(combo)))
}

// comboMultiplier returns the tier rate for the given combo count
func comboMultiplier(combo int) float64 {
	switch {
	case combo >= parameter.ComboTier3:
		return parameter.ComboMultiplier3
	case combo >= parameter.ComboTier2:
		return parameter.ComboMultiplier2
	case combo >= parameter.ComboTier1:
		return parameter.ComboMultiplier1
	default:
		return parameter.ComboMultiplier0
	}
}
