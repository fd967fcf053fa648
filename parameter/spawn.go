package parameter

import "time"

// Spawn Scheduling
const (
	// CellCooldown blocks reuse of a cell after its target is removed
	CellCooldown = 1200 * time.Millisecond

	// RecentCellWindow is the anti-repeat window: the last N used cells
	// are excluded from the primary candidate stage
	RecentCellWindow = 3

	// StarvationBackoff delays the next attempt when no cell is eligible
	StarvationBackoff = 250 * time.Millisecond

	// SpawnJitterRatio is the ± band around the profile spawn interval
	SpawnJitterRatio = 0.12
)

// Spawn Easing & Pressure Adjustments
const (
	// EaseUnlockFloor is the fraction of the grid available at ease start
	EaseUnlockFloor = 0.4

	// EaseHazardFloor is the hazard weight multiplier at ease start,
	// ramping to 1.0 at ease end
	EaseHazardFloor = 0.3

	// EaseCommonBoost is the common weight multiplier at ease start,
	// ramping to 1.0 at ease end
	EaseCommonBoost = 1.5

	// GraceHazardMultiplier suppresses hazards during the grace window
	GraceHazardMultiplier = 0.35

	// GraceSpawnIntervalMultiplier eases spawn pacing during grace
	GraceSpawnIntervalMultiplier = 1.25

	// GraceExposureMultiplier eases exposure timing during grace
	GraceExposureMultiplier = 1.2

	// GraceBlendCap limits the tier-progress profile blend during grace
	GraceBlendCap = 0.35

	// TimePressureThreshold is the time bank level that triggers the
	// late-match category boost
	TimePressureThreshold = 10 * time.Second

	// TimePressureMultiplier boosts bonus and hazard weights when the
	// time bank is critically low
	TimePressureMultiplier = 1.3

	// WeightFloor keeps the lottery well-defined after all adjustments
	WeightFloor = 0.0001
)
