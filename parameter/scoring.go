package parameter

import "time"

// Category Score Values
const (
	ScoreCommon = 1
	ScoreBonus  = 3
	ScoreHazard = -3
	ScoreChill  = 1
)

// Hazard Side Effects
const (
	// HazardTimePenalty is deducted from the time bank on a hazard hit
	HazardTimePenalty = 2000 * time.Millisecond
)

// Combo Multiplier Tiers
// Applied to positive score deltas only; each delta rounds individually
const (
	ComboTier1       = 5
	ComboTier2       = 10
	ComboTier3       = 15
	ComboMultiplier0 = 1.0
	ComboMultiplier1 = 1.2
	ComboMultiplier2 = 1.5
	ComboMultiplier3 = 2.0
)

// Time Bank
const (
	// TimeBankMax is the absolute cap on remaining time
	TimeBankMax = 90 * time.Second
)
