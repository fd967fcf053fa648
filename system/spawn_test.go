package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
	"github.com/lixenwraith/gridstrike/parameter"
)

// newSpawnWorld builds a world with only the spawn system and returns the
// concrete system for direct inspection
func newSpawnWorld(seed uint64) (*engine.World, *SpawnSystem) {
	w := engine.NewWorld(engine.NewRand(seed))
	s := NewSpawnSystem(w).(*SpawnSystem)
	w.AddSystem(s)
	return w, s
}

// TestSpawnRespectsConcurrencyCeiling verifies the population never
// exceeds the level's ceiling even over a long run with no removals
func TestSpawnRespectsConcurrencyCeiling(t *testing.T) {
	w, _ := newSpawnWorld(7)
	ceiling := parameter.Level(w.Session.Level).ConcurrencyCeiling

	for i := 0; i < 400; i++ {
		w.Advance(testTick)
		if w.Targets.Count() > ceiling {
			t.Fatalf("tick %d: population %d exceeds ceiling %d", i, w.Targets.Count(), ceiling)
		}
	}
	if w.Targets.Count() != ceiling {
		t.Errorf("expected population to settle at ceiling %d, got %d", ceiling, w.Targets.Count())
	}
}

// TestSpawnPlacesTargetsOnDistinctFreeCells verifies one target per cell
// inside grid bounds with unique increasing identities
func TestSpawnPlacesTargetsOnDistinctFreeCells(t *testing.T) {
	w, _ := newSpawnWorld(3)

	advanceFor(w, 20*time.Second)

	seen := make(map[int]bool)
	for _, tgt := range w.Targets.All() {
		if tgt.Cell < 0 || tgt.Cell >= w.Grid.Size() {
			t.Errorf("target on out-of-grid cell %d", tgt.Cell)
		}
		if seen[tgt.Cell] {
			t.Errorf("two targets share cell %d", tgt.Cell)
		}
		seen[tgt.Cell] = true
	}
}

// TestSpawnHonorsCellCooldown verifies a freed cell is not reused while
// its cooldown runs and alternatives exist
func TestSpawnHonorsCellCooldown(t *testing.T) {
	w, s := newSpawnWorld(5)

	s.HandleEvent(event.Event{
		Type:    event.EventTargetRemoved,
		Payload: &event.TargetRemovedPayload{Target: 1, Cell: 4},
	})

	profile := engine.ComputeProfile(w.Session)
	for i := 0; i < 100; i++ {
		cell, ok := s.pickCell(profile)
		if !ok {
			t.Fatal("pick failed with an empty board")
		}
		if cell == 4 {
			t.Fatalf("draw %d reused cell 4 during cooldown", i)
		}
	}

	// After the cooldown expires the cell returns to the pool
	w.Time.Now = parameter.CellCooldown + time.Millisecond
	found := false
	for i := 0; i < 200 && !found; i++ {
		cell, _ := s.pickCell(profile)
		found = cell == 4
	}
	if !found {
		t.Error("cell 4 never drawn after cooldown expiry")
	}
}

// TestSpawnRelaxesWhenAllCellsCooling verifies the cascade falls through
// to plain free cells instead of starving behind cooldowns
func TestSpawnRelaxesWhenAllCellsCooling(t *testing.T) {
	w, s := newSpawnWorld(5)

	for cell := 0; cell < w.Grid.Size(); cell++ {
		s.HandleEvent(event.Event{
			Type:    event.EventTargetRemoved,
			Payload: &event.TargetRemovedPayload{Target: 1, Cell: cell},
		})
	}

	profile := engine.ComputeProfile(w.Session)
	if _, ok := s.pickCell(profile); !ok {
		t.Error("fully cooling board starved; expected relaxation to free cells")
	}
}

// TestSpawnStarvesOnlyWhenBoardFull verifies no candidate survives a
// fully occupied board
func TestSpawnStarvesOnlyWhenBoardFull(t *testing.T) {
	w, s := newSpawnWorld(5)
	for cell := 0; cell < w.Grid.Size(); cell++ {
		w.Targets.Add(&component.TargetComponent{ID: w.Targets.NextSerial(), Cell: cell})
	}

	profile := engine.ComputeProfile(w.Session)
	if _, ok := s.pickCell(profile); ok {
		t.Error("pick succeeded on a full board")
	}
}

// TestSpawnAntiRepeatWindow verifies the recency window holds the last N
// used cells and evicts oldest first
func TestSpawnAntiRepeatWindow(t *testing.T) {
	_, s := newSpawnWorld(1)

	for cell := 0; cell <= parameter.RecentCellWindow; cell++ {
		s.rememberCell(cell)
	}

	if s.isRecent(0) {
		t.Error("oldest cell not evicted from the recency window")
	}
	for cell := 1; cell <= parameter.RecentCellWindow; cell++ {
		if !s.isRecent(cell) {
			t.Errorf("cell %d missing from the recency window", cell)
		}
	}
}

// TestSpawnSlowWidensExposure verifies targets created during the slow
// window get proportionally longer exposure
func TestSpawnSlowWidensExposure(t *testing.T) {
	w, s := newSpawnWorld(9)
	w.Session.SlowUntil = 10 * time.Second

	profile := engine.ComputeProfile(w.Session)
	s.spawnTarget(0, profile)

	tgt, ok := w.Targets.ByCell(0)
	if !ok {
		t.Fatal("spawn did not place the target")
	}
	minSlow := time.Duration(float64(profile.ExposureMin) * parameter.SlowExposureMultiplier)
	maxSlow := time.Duration(float64(profile.ExposureMax)*parameter.SlowExposureMultiplier) + time.Millisecond
	if tgt.ExposedDuration < minSlow || tgt.ExposedDuration > maxSlow {
		t.Errorf("slow exposure %v outside [%v,%v]", tgt.ExposedDuration, minSlow, maxSlow)
	}
}

// TestSpawnWeightsFollowTierBlend verifies the category lottery moves
// from the start table toward the end table as progress accumulates
func TestSpawnWeightsFollowTierBlend(t *testing.T) {
	w, s := newSpawnWorld(1)
	spec := parameter.Level(w.Session.Level)

	w.Session.TierProgress = 0
	start := s.currentWeights()
	if start.Hazard != spec.WeightsStart.Hazard {
		t.Errorf("expected start hazard weight %v, got %v", spec.WeightsStart.Hazard, start.Hazard)
	}

	w.Session.TierProgress = parameter.ProgressMax
	end := s.currentWeights()
	if end.Hazard != spec.WeightsEnd.Hazard {
		t.Errorf("expected end hazard weight %v, got %v", spec.WeightsEnd.Hazard, end.Hazard)
	}
}

// TestSpawnGraceSuppressesHazards verifies the grace window scales the
// hazard weight down
func TestSpawnGraceSuppressesHazards(t *testing.T) {
	w, s := newSpawnWorld(1)

	base := s.currentWeights()
	w.Session.Transition = engine.TransitionGrace
	grace := s.currentWeights()

	want := base.Hazard * parameter.GraceHazardMultiplier
	if diff := grace.Hazard - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected grace hazard weight %v, got %v", want, grace.Hazard)
	}
}

// TestSpawnTimePressureBoostsStakes verifies a critically low bank raises
// bonus and hazard weights
func TestSpawnTimePressureBoostsStakes(t *testing.T) {
	w, s := newSpawnWorld(1)

	base := s.currentWeights()
	w.Session.TimeBank = parameter.TimePressureThreshold - time.Second
	pressured := s.currentWeights()

	if pressured.Bonus <= base.Bonus || pressured.Hazard <= base.Hazard {
		t.Errorf("time pressure did not raise stakes: bonus %v->%v hazard %v->%v",
			base.Bonus, pressured.Bonus, base.Hazard, pressured.Hazard)
	}
}

// TestSpawnEaseRampSoftensEntry verifies level-entry easing suppresses
// hazards and boosts commons at the start of the window
func TestSpawnEaseRampSoftensEntry(t *testing.T) {
	w, s := newSpawnWorld(1)
	w.Session.Level = 2
	w.Session.EaseActive = true
	w.Session.EaseDuration = 6 * time.Second
	w.Session.EaseElapsed = 0
	w.Session.EasePrevLevel = 1

	prev := parameter.Level(1)
	weights := s.currentWeights()

	wantHazard := prev.WeightsEnd.Hazard * parameter.EaseHazardFloor
	if diff := weights.Hazard - wantHazard; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected eased hazard weight %v, got %v", wantHazard, weights.Hazard)
	}
	if weights.Common <= prev.WeightsEnd.Common {
		t.Errorf("ease start did not boost commons: %v", weights.Common)
	}
}
