package parameter

import "time"

// Checkpoint Evaluation
const (
	// CheckpointInterval is the fixed cadence of the performance evaluator
	CheckpointInterval = 5000 * time.Millisecond

	// PIWeightAccuracy, PIWeightSpeed and PIWeightCombo compose the
	// performance index; they sum to 1 and favor accuracy most
	PIWeightAccuracy = 0.5
	PIWeightSpeed    = 0.3
	PIWeightCombo    = 0.2

	// ReferenceReaction normalizes the speed term
	ReferenceReaction = 900 * time.Millisecond

	// ReferenceCombo normalizes the combo term
	ReferenceCombo = 10

	// SkillSmoothing is the EMA weight toward the newest PI sample
	SkillSmoothing = 0.25
)

// Time Bonuses
const (
	// TimeBonusHighPI and TimeBonusMediumPI are the PI thresholds
	TimeBonusHighPI   = 0.75
	TimeBonusMediumPI = 0.55

	TimeBonusHigh    = 4000 * time.Millisecond
	TimeBonusMedium  = 2000 * time.Millisecond
	TimeBonusPerfect = 1500 * time.Millisecond
)

// Tier Progress Accumulation
const (
	// ProgressPassiveRamp advances progress even at unremarkable play
	ProgressPassiveRamp = 1.2

	// ProgressSkillGain scales the (skill − target PI) term
	ProgressSkillGain = 22.0

	// ProgressMomentumGain scales the (hits − misses) term
	ProgressMomentumGain = 0.9

	// ProgressDeltaMin and ProgressDeltaMax clamp the per-checkpoint delta
	ProgressDeltaMin = -6.0
	ProgressDeltaMax = 8.0

	// ProgressIdlePenalty applies when an interval had no attempts
	ProgressIdlePenalty = -2.5

	// ProgressPendingDamp scales the delta while a promotion is pending
	ProgressPendingDamp = 0.35

	// ProgressPendingSeed is the floor progress is raised to when a
	// promotion is requested
	ProgressPendingSeed = 80.0

	// ProgressDemotionReset is the mid value progress resets to on demotion
	ProgressDemotionReset = 50.0

	ProgressMax = 100.0
)

// Promotion Cancellation
const (
	// CancelSkillMargin below target PI, combined with misses > hits,
	// abandons a pending promotion
	CancelSkillMargin = 0.05
)

// Demotion
const (
	// DemotionPIFloor increments the low-PI streak when undercut
	DemotionPIFloor = 0.32

	// DemotionStreak is the consecutive low-PI checkpoints required
	DemotionStreak = 3

	// DemotionMatchTimeGuard blocks demotion early in the match
	DemotionMatchTimeGuard = 20 * time.Second

	// DemotionSkillMargin below target PI required to demote
	DemotionSkillMargin = 0.12

	// DemotionProgressFloor is the tier progress ceiling for demotion
	DemotionProgressFloor = 25.0
)

// Profile Blend
const (
	// BlendApproachRatio limits how far tier progress pulls the difficulty
	// profile toward the next level before promotion commits
	BlendApproachRatio = 0.5
)
