package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/gridstrike/parameter"
	"github.com/lixenwraith/gridstrike/vmath"
)

// Profile is the difficulty in effect for one tick: derived on demand from
// level, tier-progress blend, grace easing and level-entry easing, never
// stored
type Profile struct {
	Rows int
	Cols int

	SpawnInterval time.Duration
	ExposureMin   time.Duration
	ExposureMax   time.Duration

	ConcurrencyFloor   int
	ConcurrencyCeiling int

	// UnlockedCells restricts spawning to a center-out prefix of the grid
	// during level-entry easing; equals Rows*Cols otherwise
	UnlockedCells int
}

// BlendFactor returns the tier-progress pull toward the next level's base
// profile, capped during grace so difficulty does not fully reach the next
// tier until grace ends
func BlendFactor(s *Session) float64 {
	f := vmath.Clamp01(s.TierProgress/parameter.ProgressMax) * parameter.BlendApproachRatio
	if s.Transition == TransitionGrace {
		f = math.Min(f, parameter.GraceBlendCap)
	}
	return f
}

// ComputeProfile derives the difficulty profile for the session's current
// state. Grid geometry and concurrency bounds come from the level itself;
// pacing blends toward the next tier as progress accumulates
func ComputeProfile(s *Session) Profile {
	spec := parameter.Level(s.Level)

	p := Profile{
		Rows:               spec.Rows,
		Cols:               spec.Cols,
		SpawnInterval:      spec.SpawnInterval,
		ExposureMin:        spec.ExposureMin,
		ExposureMax:        spec.ExposureMax,
		ConcurrencyFloor:   spec.ConcurrencyFloor,
		ConcurrencyCeiling: spec.ConcurrencyCeiling,
		UnlockedCells:      spec.Rows * spec.Cols,
	}

	// Tier-progress approach toward the next level's pacing
	if s.Level < parameter.MaxLevel {
		next := parameter.Level(s.Level + 1)
		f := BlendFactor(s)
		p.SpawnInterval = lerpDuration(spec.SpawnInterval, next.SpawnInterval, f)
		p.ExposureMin = lerpDuration(spec.ExposureMin, next.ExposureMin, f)
		p.ExposureMax = lerpDuration(spec.ExposureMax, next.ExposureMax, f)
	}

	// Level-entry easing: ramp from the previous level's pacing and unlock
	// the grid center-out
	if s.EaseActive {
		prev := parameter.Level(s.EasePrevLevel)
		ease := vmath.SmoothStep(s.EaseRatio())
		p.SpawnInterval = lerpDuration(prev.SpawnInterval, p.SpawnInterval, ease)
		p.ExposureMin = lerpDuration(prev.ExposureMin, p.ExposureMin, ease)
		p.ExposureMax = lerpDuration(prev.ExposureMax, p.ExposureMax, ease)

		total := spec.Rows * spec.Cols
		unlocked := int(math.Ceil(vmath.Lerp(parameter.EaseUnlockFloor, 1, ease) * float64(total)))
		if unlocked < 1 {
			unlocked = 1
		}
		if unlocked > total {
			unlocked = total
		}
		p.UnlockedCells = unlocked
	}

	// Grace easing on top of whatever the blends produced
	if s.Transition == TransitionGrace {
		p.SpawnInterval = time.Duration(float64(p.SpawnInterval) * parameter.GraceSpawnIntervalMultiplier)
		p.ExposureMin = time.Duration(float64(p.ExposureMin) * parameter.GraceExposureMultiplier)
		p.ExposureMax = time.Duration(float64(p.ExposureMax) * parameter.GraceExposureMultiplier)
	}

	return p
}

func lerpDuration(a, b time.Duration, t float64) time.Duration {
	return time.Duration(vmath.Lerp(float64(a), float64(b), t))
}
