package event

import (
	"time"

	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/core"
)

// StrikeRequestPayload carries the resolved identity from the input layer
type StrikeRequestPayload struct {
	Target core.Entity
}

// TargetSpawnedPayload describes a newly created target
type TargetSpawnedPayload struct {
	Target   core.Entity
	Cell     int
	Category component.Category
}

// TargetHitPayload describes a successful strike resolution
type TargetHitPayload struct {
	Target     core.Entity
	Cell       int
	Category   component.Category
	ScoreDelta int
	Combo      int
	Reaction   time.Duration
}

// TargetMissPayload describes an exposure timeout or an empty strike.
// Target is NoEntity and Timeout false for empty-cell input
type TargetMissPayload struct {
	Target  core.Entity
	Cell    int
	Timeout bool
}

// TargetRemovedPayload frees the named cell and starts its reuse cooldown
type TargetRemovedPayload struct {
	Target core.Entity
	Cell   int
}

// SlowAppliedPayload reports the slow window opened by a chill hit
type SlowAppliedPayload struct {
	Until time.Duration
}

// CheckpointPayload reports one performance evaluation
type CheckpointPayload struct {
	PI       float64
	Skill    float64
	Progress float64
	Hits     int
	Misses   int
}

// TimeBonusPayload reports a time bank credit
type TimeBonusPayload struct {
	Amount  time.Duration
	Perfect bool
}

// PromotionPayload names the levels involved in a promotion request
type PromotionPayload struct {
	From int
	To   int
}

// DemotionPayload names the levels involved in a demotion
type DemotionPayload struct {
	From int
	To   int
}

// LevelCommittedPayload announces the level now in effect
type LevelCommittedPayload struct {
	Level int
}

// MatchEndedPayload summarizes the finished match
type MatchEndedPayload struct {
	Score     int
	BestCombo int
	Level     int
	Hits      int
	Misses    int
	Elapsed   time.Duration
}
