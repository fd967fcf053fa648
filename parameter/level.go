package parameter

import (
	"fmt"
	"math"
	"time"
)

// MinLevel and MaxLevel bound the configured difficulty range.
// Level writes clamp to this range at the transition machine boundary;
// lookups outside it are programming errors
const (
	MinLevel = 1
	MaxLevel = 5
)

// PromoteHitsSentinel marks a level that can never be promoted from.
// The top level keeps an unreachable hit requirement as a permanent ceiling
const PromoteHitsSentinel = math.MaxInt32

// CategoryWeights is a lottery weight set for the four target categories
type CategoryWeights struct {
	Common float64
	Bonus  float64
	Hazard float64
	Chill  float64
}

// Total returns the summed weight mass
func (w CategoryWeights) Total() float64 {
	return w.Common + w.Bonus + w.Hazard + w.Chill
}

// LevelSpec is one row of the difficulty table
type LevelSpec struct {
	// Grid geometry
	Rows int
	Cols int

	// Spawn pacing
	SpawnInterval time.Duration
	ExposureMin   time.Duration
	ExposureMax   time.Duration

	// Active target population bounds
	ConcurrencyFloor   int
	ConcurrencyCeiling int

	// Performance target for the adaptation controller
	TargetPI float64

	// Promotion thresholds
	PromoteProgress float64
	PromoteSkill    float64
	PromoteMinHits  int

	// Transition windows. PendingDuration is read from the level being left,
	// GraceDuration and EaseDuration from the level being entered
	PendingDuration time.Duration
	GraceDuration   time.Duration
	EaseDuration    time.Duration

	// Time bank granted when a match or tier starts at this level
	TimeBankStart time.Duration

	// Category lottery tables, blended start→end by tier progress
	WeightsStart CategoryWeights
	WeightsEnd   CategoryWeights
}

// Levels is the fixed difficulty table indexed 1..MaxLevel. Index 0 is a
// deliberate gap so level numbers index directly
var Levels = [MaxLevel + 1]LevelSpec{
	1: {
		Rows: 3, Cols: 3,
		SpawnInterval:    1400 * time.Millisecond,
		ExposureMin:      1600 * time.Millisecond,
		ExposureMax:      2200 * time.Millisecond,
		ConcurrencyFloor: 1, ConcurrencyCeiling: 3,
		TargetPI:        0.42,
		PromoteProgress: 66, PromoteSkill: 0.40, PromoteMinHits: 1,
		PendingDuration: 4000 * time.Millisecond,
		GraceDuration:   0,
		EaseDuration:    0,
		TimeBankStart:   60 * time.Second,
		WeightsStart:    CategoryWeights{Common: 78, Bonus: 10, Hazard: 8, Chill: 4},
		WeightsEnd:      CategoryWeights{Common: 70, Bonus: 12, Hazard: 12, Chill: 6},
	},
	2: {
		Rows: 3, Cols: 4,
		SpawnInterval:    1200 * time.Millisecond,
		ExposureMin:      1400 * time.Millisecond,
		ExposureMax:      2000 * time.Millisecond,
		ConcurrencyFloor: 1, ConcurrencyCeiling: 4,
		TargetPI:        0.46,
		PromoteProgress: 70, PromoteSkill: 0.45, PromoteMinHits: 2,
		PendingDuration: 6000 * time.Millisecond,
		GraceDuration:   8000 * time.Millisecond,
		EaseDuration:    6000 * time.Millisecond,
		TimeBankStart:   45 * time.Second,
		WeightsStart:    CategoryWeights{Common: 72, Bonus: 12, Hazard: 11, Chill: 5},
		WeightsEnd:      CategoryWeights{Common: 64, Bonus: 14, Hazard: 16, Chill: 6},
	},
	3: {
		Rows: 4, Cols: 4,
		SpawnInterval:    1000 * time.Millisecond,
		ExposureMin:      1200 * time.Millisecond,
		ExposureMax:      1750 * time.Millisecond,
		ConcurrencyFloor: 2, ConcurrencyCeiling: 5,
		TargetPI:        0.50,
		PromoteProgress: 74, PromoteSkill: 0.50, PromoteMinHits: 3,
		PendingDuration: 6000 * time.Millisecond,
		GraceDuration:   7000 * time.Millisecond,
		EaseDuration:    6000 * time.Millisecond,
		TimeBankStart:   40 * time.Second,
		WeightsStart:    CategoryWeights{Common: 66, Bonus: 13, Hazard: 15, Chill: 6},
		WeightsEnd:      CategoryWeights{Common: 58, Bonus: 15, Hazard: 20, Chill: 7},
	},
	4: {
		Rows: 4, Cols: 5,
		SpawnInterval:    850 * time.Millisecond,
		ExposureMin:      1000 * time.Millisecond,
		ExposureMax:      1500 * time.Millisecond,
		ConcurrencyFloor: 2, ConcurrencyCeiling: 6,
		TargetPI:        0.55,
		PromoteProgress: 78, PromoteSkill: 0.55, PromoteMinHits: 4,
		PendingDuration: 6000 * time.Millisecond,
		GraceDuration:   6000 * time.Millisecond,
		EaseDuration:    5000 * time.Millisecond,
		TimeBankStart:   35 * time.Second,
		WeightsStart:    CategoryWeights{Common: 60, Bonus: 14, Hazard: 19, Chill: 7},
		WeightsEnd:      CategoryWeights{Common: 52, Bonus: 16, Hazard: 24, Chill: 8},
	},
	5: {
		Rows: 5, Cols: 5,
		SpawnInterval:    700 * time.Millisecond,
		ExposureMin:      850 * time.Millisecond,
		ExposureMax:      1300 * time.Millisecond,
		ConcurrencyFloor: 3, ConcurrencyCeiling: 7,
		TargetPI:        0.60,
		PromoteProgress: 100, PromoteSkill: 1.0, PromoteMinHits: PromoteHitsSentinel,
		PendingDuration: 6000 * time.Millisecond,
		GraceDuration:   5000 * time.Millisecond,
		EaseDuration:    5000 * time.Millisecond,
		TimeBankStart:   30 * time.Second,
		WeightsStart:    CategoryWeights{Common: 54, Bonus: 15, Hazard: 23, Chill: 8},
		WeightsEnd:      CategoryWeights{Common: 48, Bonus: 16, Hazard: 28, Chill: 8},
	},
}

// Level returns the table row for a configured level.
// Out-of-range access is a programming error; callers clamp writes at the
// transition boundary, so a bad index here means corrupted state
func Level(n int) LevelSpec {
	if n < MinLevel || n > MaxLevel {
		panic(fmt.Sprintf("level %d outside configured range [%d,%d]", n, MinLevel, MaxLevel))
	}
	return Levels[n]
}

// ClampLevel bounds a level write to the configured range
func ClampLevel(n int) int {
	if n < MinLevel {
		return MinLevel
	}
	if n > MaxLevel {
		return MaxLevel
	}
	return n
}

// ValidateLevels rejects gaps or degenerate rows in the level table.
// Replaces the silent fallback-to-level-1 lookups the original relied on
func ValidateLevels() error {
	for n := MinLevel; n <= MaxLevel; n++ {
		spec := Levels[n]
		if spec.Rows < 1 || spec.Cols < 1 {
			return fmt.Errorf("level %d: empty grid %dx%d", n, spec.Rows, spec.Cols)
		}
		if spec.SpawnInterval <= 0 {
			return fmt.Errorf("level %d: non-positive spawn interval", n)
		}
		if spec.ExposureMin <= 0 || spec.ExposureMax < spec.ExposureMin {
			return fmt.Errorf("level %d: invalid exposure range [%v,%v]", n, spec.ExposureMin, spec.ExposureMax)
		}
		if spec.ConcurrencyFloor < 0 || spec.ConcurrencyCeiling < 1 || spec.ConcurrencyFloor > spec.ConcurrencyCeiling {
			return fmt.Errorf("level %d: invalid concurrency bounds %d/%d", n, spec.ConcurrencyFloor, spec.ConcurrencyCeiling)
		}
		if spec.ConcurrencyCeiling > spec.Rows*spec.Cols {
			return fmt.Errorf("level %d: concurrency ceiling %d exceeds %d cells", n, spec.ConcurrencyCeiling, spec.Rows*spec.Cols)
		}
		if spec.TargetPI <= 0 || spec.TargetPI > 1 {
			return fmt.Errorf("level %d: target PI %v outside (0,1]", n, spec.TargetPI)
		}
		if spec.TimeBankStart <= 0 {
			return fmt.Errorf("level %d: non-positive time bank start", n)
		}
		if n < MaxLevel && spec.PromoteMinHits < 1 {
			return fmt.Errorf("level %d: promotion requires at least one hit", n)
		}
		for _, w := range []CategoryWeights{spec.WeightsStart, spec.WeightsEnd} {
			if w.Common < 0 || w.Bonus < 0 || w.Hazard < 0 || w.Chill < 0 {
				return fmt.Errorf("level %d: negative category weight", n)
			}
			if w.Total() <= 0 {
				return fmt.Errorf("level %d: zero total category weight", n)
			}
		}
	}
	return nil
}
