package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/gridstrike/parameter"
)

// TestBlendFactorApproachesHalfway verifies full tier progress pulls the
// profile only halfway toward the next level
func TestBlendFactorApproachesHalfway(t *testing.T) {
	s := NewSession()

	s.TierProgress = 0
	if f := BlendFactor(s); f != 0 {
		t.Errorf("expected zero blend at zero progress, got %v", f)
	}

	s.TierProgress = parameter.ProgressMax
	if f := BlendFactor(s); f != parameter.BlendApproachRatio {
		t.Errorf("expected blend %v at full progress, got %v", parameter.BlendApproachRatio, f)
	}
}

// TestBlendFactorCappedDuringGrace verifies the grace window limits the
// next-tier pull
func TestBlendFactorCappedDuringGrace(t *testing.T) {
	s := NewSession()
	s.TierProgress = parameter.ProgressMax
	s.Transition = TransitionGrace

	if f := BlendFactor(s); f != parameter.GraceBlendCap {
		t.Errorf("expected grace-capped blend %v, got %v", parameter.GraceBlendCap, f)
	}
}

// TestComputeProfileBaseValues verifies a fresh session mirrors the level
// table row unchanged
func TestComputeProfileBaseValues(t *testing.T) {
	s := NewSession()
	spec := parameter.Level(s.Level)

	p := ComputeProfile(s)
	if p.SpawnInterval != spec.SpawnInterval {
		t.Errorf("expected spawn interval %v, got %v", spec.SpawnInterval, p.SpawnInterval)
	}
	if p.ExposureMin != spec.ExposureMin || p.ExposureMax != spec.ExposureMax {
		t.Errorf("expected exposure [%v,%v], got [%v,%v]",
			spec.ExposureMin, spec.ExposureMax, p.ExposureMin, p.ExposureMax)
	}
	if p.UnlockedCells != spec.Rows*spec.Cols {
		t.Errorf("expected all %d cells unlocked, got %d", spec.Rows*spec.Cols, p.UnlockedCells)
	}
}

// TestComputeProfileBlendsTowardNextLevel verifies accumulated progress
// tightens pacing toward the next level's row
func TestComputeProfileBlendsTowardNextLevel(t *testing.T) {
	s := NewSession()
	s.TierProgress = parameter.ProgressMax

	spec := parameter.Level(s.Level)
	next := parameter.Level(s.Level + 1)

	p := ComputeProfile(s)
	if p.SpawnInterval >= spec.SpawnInterval {
		t.Errorf("full progress did not tighten spawn interval: %v", p.SpawnInterval)
	}
	if p.SpawnInterval <= next.SpawnInterval {
		t.Errorf("blend overshot the next level's interval: %v", p.SpawnInterval)
	}
}

// TestComputeProfileGraceEasing verifies the grace window relaxes pacing
func TestComputeProfileGraceEasing(t *testing.T) {
	s := NewSession()
	base := ComputeProfile(s)

	s.Transition = TransitionGrace
	eased := ComputeProfile(s)

	wantInterval := time.Duration(float64(base.SpawnInterval) * parameter.GraceSpawnIntervalMultiplier)
	if eased.SpawnInterval != wantInterval {
		t.Errorf("expected grace interval %v, got %v", wantInterval, eased.SpawnInterval)
	}
	if eased.ExposureMin <= base.ExposureMin {
		t.Errorf("grace did not widen exposure: %v", eased.ExposureMin)
	}
}

// TestComputeProfileEaseUnlocksCenterOut verifies level-entry easing
// restricts the board to a center-out fraction that grows over the window
func TestComputeProfileEaseUnlocksCenterOut(t *testing.T) {
	s := NewSession()
	s.Level = 2
	s.EaseActive = true
	s.EaseDuration = 6 * time.Second
	s.EasePrevLevel = 1

	spec := parameter.Level(s.Level)
	total := spec.Rows * spec.Cols

	s.EaseElapsed = 0
	start := ComputeProfile(s)
	wantStart := int(math.Ceil(parameter.EaseUnlockFloor * float64(total)))
	if start.UnlockedCells != wantStart {
		t.Errorf("expected %d cells at ease start, got %d", wantStart, start.UnlockedCells)
	}

	s.EaseElapsed = s.EaseDuration
	end := ComputeProfile(s)
	if end.UnlockedCells != total {
		t.Errorf("expected full board at ease end, got %d of %d", end.UnlockedCells, total)
	}
}
