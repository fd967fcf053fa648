package engine

import (
	"time"

	"github.com/lixenwraith/gridstrike/parameter"
)

// TransitionState is the stage transition machine's state
type TransitionState int

const (
	TransitionNone TransitionState = iota
	TransitionPending
	TransitionGrace
)

// String returns the state name for snapshots and logs
func (t TransitionState) String() string {
	switch t {
	case TransitionPending:
		return "pending"
	case TransitionGrace:
		return "grace"
	}
	return "none"
}

// IntervalStats accumulates per-checkpoint performance counters.
// Written by the score system, consumed and reset by the adaptation system
type IntervalStats struct {
	Hits            int
	Misses          int
	ReactionSum     time.Duration
	ReactionSamples int
}

// Attempts returns hits plus misses
func (s IntervalStats) Attempts() int {
	return s.Hits + s.Misses
}

// Reset clears the accumulator for the next interval
func (s *IntervalStats) Reset() {
	*s = IntervalStats{}
}

// Session is the single mutable match state, passed by reference into each
// system. Field ownership per tick: level and transition fields belong to the
// transition system, score/combo to the score system, stats/skill/progress to
// the adaptation system, time bank decay to the timekeeper
type Session struct {
	Level     int
	Score     int
	Combo     int
	BestCombo int

	// TimeBank is the remaining time, bounded [0, TimeBankMax]
	TimeBank time.Duration

	// TierProgress tracks proximity to promotion in [0,100]
	TierProgress float64

	// Skill is the EMA of the performance index in [0,1]
	Skill float64

	Transition        TransitionState
	TransitionTarget  int
	TransitionElapsed time.Duration

	// PendingDuration is captured from the departing level when the
	// pending window opens
	PendingDuration time.Duration

	// LockRemaining freezes gameplay while positive (stage-clear notice)
	LockRemaining time.Duration

	// Level-entry easing, independent of the transition lock
	EaseActive    bool
	EaseElapsed   time.Duration
	EaseDuration  time.Duration
	EasePrevLevel int

	// SlowUntil is the game time the slow status expires; zero = inactive
	SlowUntil time.Duration

	Stats IntervalStats

	// Whole-match totals for the profile store
	TotalHits   int
	TotalMisses int

	MatchElapsed time.Duration
	Ended        bool
}

// NewSession creates match state at level 1 with a full starting bank
func NewSession() *Session {
	return &Session{
		Level:    parameter.MinLevel,
		TimeBank: parameter.Level(parameter.MinLevel).TimeBankStart,
	}
}

// Locked reports whether the transition lock is freezing gameplay
func (s *Session) Locked() bool {
	return s.LockRemaining > 0
}

// EaseRatio returns level-entry easing progress in [0,1]; 1 when inactive
func (s *Session) EaseRatio() float64 {
	if !s.EaseActive || s.EaseDuration <= 0 {
		return 1
	}
	r := float64(s.EaseElapsed) / float64(s.EaseDuration)
	if r > 1 {
		return 1
	}
	return r
}

// SlowActive reports whether the slow status covers the given game time
func (s *Session) SlowActive(now time.Duration) bool {
	return now < s.SlowUntil
}

// AddTime applies a time bank delta, clamped to [0, TimeBankMax]
func (s *Session) AddTime(delta time.Duration) {
	s.TimeBank += delta
	if s.TimeBank < 0 {
		s.TimeBank = 0
	}
	if s.TimeBank > parameter.TimeBankMax {
		s.TimeBank = parameter.TimeBankMax
	}
}
