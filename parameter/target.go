package parameter

import "time"

// Target Phase Durations
// Entry, struck and exit bands are level-independent; exposure comes from
// the level's difficulty profile
const (
	EntryDurationMin = 250 * time.Millisecond
	EntryDurationMax = 400 * time.Millisecond

	StruckDurationMin = 250 * time.Millisecond
	StruckDurationMax = 350 * time.Millisecond

	ExitDurationMin = 300 * time.Millisecond
	ExitDurationMax = 450 * time.Millisecond
)

// Slow Status
const (
	// SlowDuration is the window opened by a chill hit
	SlowDuration = 2000 * time.Millisecond

	// SlowExposureMultiplier scales the exposure duration of targets
	// created while the slow window is open
	SlowExposureMultiplier = 1.35

	// SlowSpawnIntervalMultiplier widens the scheduled spawn interval
	// while the slow window is open
	SlowSpawnIntervalMultiplier = 1.35
)
