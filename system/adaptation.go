package system

import (
	"time"

	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
	"github.com/lixenwraith/gridstrike/parameter"
	"github.com/lixenwraith/gridstrike/vmath"
)

// AdaptationSystem is the difficulty/performance controller. Every fixed
// checkpoint interval it reduces the interval statistics to a performance
// index, updates the skill EMA and tier progress, grants time bonuses and
// requests promotion or demotion
type AdaptationSystem struct {
	world *engine.World

	// cpElapsed accumulates toward the next checkpoint
	cpElapsed time.Duration

	// lowStreak counts consecutive checkpoints with PI under the floor
	lowStreak int

	enabled bool
}

// NewAdaptationSystem creates a new adaptation system
func NewAdaptationSystem(world *engine.World) engine.System {
	s := &AdaptationSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for a new match
func (s *AdaptationSystem) Init() {
	s.cpElapsed = 0
	s.lowStreak = 0
	s.enabled = true
}

// Name returns system's name
func (s *AdaptationSystem) Name() string {
	return "adaptation"
}

// Priority returns the system's priority (runs last, sees the tick's
// final statistics)
func (s *AdaptationSystem) Priority() int {
	return parameter.PriorityAdaptation
}

// EventTypes returns the event types AdaptationSystem handles
func (s *AdaptationSystem) EventTypes() []event.Type {
	return []event.Type{
		event.EventMatchReset,
	}
}

// HandleEvent processes routed events
func (s *AdaptationSystem) HandleEvent(ev event.Event) {
	if ev.Type == event.EventMatchReset {
		s.Init()
	}
}

// Update fires a checkpoint for each full interval of accumulated
// simulated time. Multiple small ticks compose one interval; one
// oversized tick can never fire more than once since deltas are capped
// well below the interval
func (s *AdaptationSystem) Update() {
	if !s.enabled {
		return
	}

	sess := s.world.Session
	if sess.Ended || sess.Locked() {
		return
	}

	s.cpElapsed += s.world.Time.Delta
	for s.cpElapsed >= parameter.CheckpointInterval {
		s.cpElapsed -= parameter.CheckpointInterval
		s.checkpoint()
	}
}

// checkpoint consumes and resets the interval statistics
func (s *AdaptationSystem) checkpoint() {
	sess := s.world.Session
	stats := sess.Stats
	sess.Stats.Reset()

	pi := performanceIndex(stats, sess.Combo)

	sess.Skill += parameter.SkillSmoothing * (pi - sess.Skill)

	s.grantTimeBonus(pi, stats)
	s.advanceProgress(stats)

	s.world.PushEvent(event.EventCheckpoint, &event.CheckpointPayload{
		PI:       pi,
		Skill:    sess.Skill,
		Progress: sess.TierProgress,
		Hits:     stats.Hits,
		Misses:   stats.Misses,
	})

	s.evaluatePromotion(stats)
	s.evaluateCancellation(stats)
	s.evaluateDemotion(pi)
}

// performanceIndex blends accuracy, reaction speed and combo strength.
// Weights sum to 1 and favor accuracy most, then speed, then combo
func performanceIndex(stats engine.IntervalStats, combo int) float64 {
	accuracy := 0.0
	if stats.Attempts() > 0 {
		accuracy = float64(stats.Hits) / float64(stats.Attempts())
	}

	speed := 0.0
	if stats.ReactionSamples > 0 {
		avg := stats.ReactionSum / time.Duration(stats.ReactionSamples)
		speed = vmath.Clamp01(1 - float64(avg)/float64(parameter.ReferenceReaction))
	}

	comboTerm := vmath.Clamp01(float64(combo) / parameter.ReferenceCombo)

	return parameter.PIWeightAccuracy*accuracy +
		parameter.PIWeightSpeed*speed +
		parameter.PIWeightCombo*comboTerm
}

// grantTimeBonus credits the time bank for strong intervals
func (s *AdaptationSystem) grantTimeBonus(pi float64, stats engine.IntervalStats) {
	var amount time.Duration
	switch {
	case pi >= parameter.TimeBonusHighPI:
		amount = parameter.TimeBonusHigh
	case pi >= parameter.TimeBonusMediumPI:
		amount = parameter.TimeBonusMedium
	}

	perfect := stats.Hits > 0 && stats.Misses == 0
	if perfect {
		amount += parameter.TimeBonusPerfect
	}

	if amount <= 0 {
		return
	}

	s.world.Session.AddTime(amount)
	s.world.PushEvent(event.EventTimeBonus, &event.TimeBonusPayload{
		Amount:  amount,
		Perfect: perfect,
	})
}

// advanceProgress moves the tier-progress accumulator. Idle intervals
// always nudge progress downward; a pending promotion damps the delta
// because the session is already spending its margin inside the window
func (s *AdaptationSystem) advanceProgress(stats engine.IntervalStats) {
	sess := s.world.Session
	spec := parameter.Level(sess.Level)

	var delta float64
	if stats.Attempts() == 0 {
		delta = parameter.ProgressIdlePenalty
	} else {
		delta = parameter.ProgressPassiveRamp +
			parameter.ProgressSkillGain*(sess.Skill-spec.TargetPI) +
			parameter.ProgressMomentumGain*float64(stats.Hits-stats.Misses)
		delta = vmath.Clamp(delta, parameter.ProgressDeltaMin, parameter.ProgressDeltaMax)
	}

	if sess.Transition == engine.TransitionPending {
		delta *= parameter.ProgressPendingDamp
	}

	sess.TierProgress = vmath.Clamp(sess.TierProgress+delta, 0, parameter.ProgressMax)
}

// evaluatePromotion requests a level-up when progress, skill and the
// interval hit count all clear the level's thresholds. The top level's
// sentinel hit requirement makes it a hard ceiling
func (s *AdaptationSystem) evaluatePromotion(stats engine.IntervalStats) {
	sess := s.world.Session
	if sess.Transition != engine.TransitionNone || sess.Level >= parameter.MaxLevel {
		return
	}

	spec := parameter.Level(sess.Level)
	if sess.TierProgress < spec.PromoteProgress ||
		sess.Skill < spec.PromoteSkill ||
		stats.Hits < spec.PromoteMinHits {
		return
	}

	if sess.TierProgress < parameter.ProgressPendingSeed {
		sess.TierProgress = parameter.ProgressPendingSeed
	}

	s.world.PushEvent(event.EventPromotionRequested, &event.PromotionPayload{
		From: sess.Level,
		To:   sess.Level + 1,
	})
}

// evaluateCancellation abandons a pending promotion when performance
// collapses inside the window
func (s *AdaptationSystem) evaluateCancellation(stats engine.IntervalStats) {
	sess := s.world.Session
	if sess.Transition != engine.TransitionPending || sess.Level <= parameter.MinLevel {
		return
	}

	spec := parameter.Level(sess.Level)
	if sess.Skill < spec.TargetPI-parameter.CancelSkillMargin && stats.Misses > stats.Hits {
		s.world.PushEvent(event.EventPromotionCancelled, &event.PromotionPayload{
			From: sess.Level,
			To:   sess.TransitionTarget,
		})
	}
}

// evaluateDemotion tracks the low-PI streak and drops the level when
// every floor condition holds. The demotion path bypasses pending and
// grace entirely
func (s *AdaptationSystem) evaluateDemotion(pi float64) {
	sess := s.world.Session

	if pi < parameter.DemotionPIFloor {
		s.lowStreak++
	} else {
		s.lowStreak = 0
	}

	if s.lowStreak < parameter.DemotionStreak {
		return
	}
	if sess.Transition != engine.TransitionNone || sess.EaseActive {
		return
	}
	if sess.Level <= parameter.MinLevel {
		return
	}
	if sess.MatchElapsed < parameter.DemotionMatchTimeGuard {
		return
	}

	spec := parameter.Level(sess.Level)
	if sess.Skill >= spec.TargetPI-parameter.DemotionSkillMargin {
		return
	}
	if sess.TierProgress >= parameter.DemotionProgressFloor {
		return
	}

	s.lowStreak = 0
	sess.TierProgress = parameter.ProgressDemotionReset

	s.world.PushEvent(event.EventDemotionRequested, &event.DemotionPayload{
		From: sess.Level,
		To:   sess.Level - 1,
	})
}
