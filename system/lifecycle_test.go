package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
)

// newLifecycleWorld builds a world with only the lifecycle system, so
// phase timing is observable without scheduler interference
func newLifecycleWorld() *engine.World {
	w := engine.NewWorld(engine.NewRand(1))
	w.AddSystem(NewLifecycleSystem(w))
	return w
}

func addPhasedTarget(w *engine.World, entry, exposed, exit time.Duration) *component.TargetComponent {
	t := &component.TargetComponent{
		ID:              w.Targets.NextSerial(),
		Cell:            0,
		Category:        component.CategoryCommon,
		Phase:           component.PhaseEntering,
		SpawnedAt:       w.Time.Now,
		EntryDuration:   entry,
		ExposedDuration: exposed,
		StruckDuration:  300 * time.Millisecond,
		ExitDuration:    exit,
	}
	w.Targets.Add(t)
	return t
}

// TestLifecyclePhaseOrdering verifies entering, exposed, exiting, removed
// in sequence with an exposure timeout reported as a miss
func TestLifecyclePhaseOrdering(t *testing.T) {
	w := newLifecycleWorld()
	tgt := addPhasedTarget(w, 160*time.Millisecond, 240*time.Millisecond, 160*time.Millisecond)

	w.Advance(testTick)
	if tgt.Phase != component.PhaseEntering {
		t.Fatalf("tick 1: expected entering, got %v", tgt.Phase)
	}

	w.Advance(testTick)
	if tgt.Phase != component.PhaseExposed {
		t.Fatalf("tick 2: expected exposed, got %v", tgt.Phase)
	}

	var events []event.Event
	for i := 0; i < 3; i++ {
		events = append(events, w.Advance(testTick)...)
	}
	if tgt.Phase != component.PhaseExiting {
		t.Fatalf("tick 5: expected exiting, got %v", tgt.Phase)
	}
	if countEvents(events, event.EventTargetMiss) != 1 {
		t.Error("exposure timeout did not fire a miss")
	}

	events = nil
	for i := 0; i < 2; i++ {
		events = append(events, w.Advance(testTick)...)
	}
	if w.Targets.Count() != 0 {
		t.Error("target not removed after exit phase")
	}
	if countEvents(events, event.EventTargetRemoved) != 1 {
		t.Error("removal did not fire the removed event")
	}
}

// TestLifecycleCarriesOvershoot verifies leftover tick time transfers
// into the next phase instead of being dropped
func TestLifecycleCarriesOvershoot(t *testing.T) {
	w := newLifecycleWorld()
	tgt := addPhasedTarget(w, 40*time.Millisecond, 2*time.Second, 400*time.Millisecond)

	w.Advance(testTick)

	if tgt.Phase != component.PhaseExposed {
		t.Fatalf("expected exposed after overshooting entry, got %v", tgt.Phase)
	}
	if tgt.PhaseElapsed != 40*time.Millisecond {
		t.Errorf("expected 40ms carried into exposed, got %v", tgt.PhaseElapsed)
	}
}

// TestLifecycleSkipsMultiplePhasesInOneTick verifies a single tick can
// cross several short phases, still reporting the timeout miss
func TestLifecycleSkipsMultiplePhasesInOneTick(t *testing.T) {
	w := newLifecycleWorld()
	tgt := addPhasedTarget(w, 30*time.Millisecond, 20*time.Millisecond, 400*time.Millisecond)

	events := w.Advance(testTick)

	if tgt.Phase != component.PhaseExiting {
		t.Fatalf("expected exiting after crossing two phases, got %v", tgt.Phase)
	}
	if tgt.PhaseElapsed != 30*time.Millisecond {
		t.Errorf("expected 30ms carried into exiting, got %v", tgt.PhaseElapsed)
	}
	if countEvents(events, event.EventTargetMiss) != 1 {
		t.Error("fast-forwarded exposure did not fire a miss")
	}
}

// TestLifecycleStruckSkipsMissPath verifies a struck target exits without
// a timeout miss
func TestLifecycleStruckSkipsMissPath(t *testing.T) {
	w := newLifecycleWorld()
	tgt := addPhasedTarget(w, 10*time.Millisecond, 2*time.Second, 80*time.Millisecond)
	tgt.Phase = component.PhaseStruck
	tgt.PhaseElapsed = 0
	tgt.Struck = true
	tgt.StruckDuration = 80 * time.Millisecond

	events := advanceFor(w, 240*time.Millisecond)

	if w.Targets.Count() != 0 {
		t.Error("struck target never removed")
	}
	if countEvents(events, event.EventTargetMiss) != 0 {
		t.Error("struck target fired a timeout miss")
	}
	if countEvents(events, event.EventTargetRemoved) != 1 {
		t.Error("struck target did not fire the removed event")
	}
}

// TestLifecycleFrozenDuringLock verifies phases hold while the transition
// lock is up
func TestLifecycleFrozenDuringLock(t *testing.T) {
	w := newLifecycleWorld()
	tgt := addPhasedTarget(w, 160*time.Millisecond, 240*time.Millisecond, 160*time.Millisecond)
	w.Session.LockRemaining = time.Minute

	advanceFor(w, time.Second)

	if tgt.Phase != component.PhaseEntering || tgt.PhaseElapsed != 0 {
		t.Errorf("locked tick advanced lifecycle: phase=%v elapsed=%v", tgt.Phase, tgt.PhaseElapsed)
	}
}
