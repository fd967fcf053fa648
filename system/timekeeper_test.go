package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
)

// TestTimekeeperEndsMatchOnEmptyBank verifies 1:1 decay and the terminal
// match-ended event with whole-match totals
func TestTimekeeperEndsMatchOnEmptyBank(t *testing.T) {
	w := newTestWorld(1)
	w.Session.TimeBank = 200 * time.Millisecond
	w.Session.TotalHits = 12
	w.Session.TotalMisses = 4
	w.Session.Score = 37

	var events []event.Event
	for i := 0; i < 5; i++ {
		events = append(events, w.Advance(testTick)...)
	}

	if !w.Session.Ended {
		t.Fatal("match did not end on an empty bank")
	}
	if w.Session.TimeBank != 0 {
		t.Errorf("bank not floored at zero: %v", w.Session.TimeBank)
	}
	if w.Targets.Count() != 0 {
		t.Error("targets survived match end")
	}

	found := false
	for _, ev := range events {
		if ev.Type != event.EventMatchEnded {
			continue
		}
		found = true
		payload := ev.Payload.(*event.MatchEndedPayload)
		if payload.Score != 37 || payload.Hits != 12 || payload.Misses != 4 {
			t.Errorf("match summary wrong: %+v", payload)
		}
	}
	if !found {
		t.Error("no match ended event fired")
	}

	// Finished sessions drop further ticks entirely
	if extra := w.Advance(testTick); extra != nil {
		t.Errorf("post-match tick produced events: %v", extra)
	}
}

// TestTimekeeperDecaysOneToOne verifies bank and match time track
// simulated time exactly
func TestTimekeeperDecaysOneToOne(t *testing.T) {
	w := engine.NewWorld(engine.NewRand(1))
	w.AddSystem(NewTimekeeperSystem(w))
	bankBefore := w.Session.TimeBank

	advanceFor(w, 2*time.Second)

	if got := bankBefore - w.Session.TimeBank; got != 2*time.Second {
		t.Errorf("expected 2s of decay, got %v", got)
	}
	if w.Session.MatchElapsed != 2*time.Second {
		t.Errorf("expected 2s match elapsed, got %v", w.Session.MatchElapsed)
	}
}

// TestTimekeeperSuspendedDuringLock verifies the bank holds while the
// transition lock is up
func TestTimekeeperSuspendedDuringLock(t *testing.T) {
	w := engine.NewWorld(engine.NewRand(1))
	w.AddSystem(NewTimekeeperSystem(w))
	w.Session.LockRemaining = time.Minute
	bankBefore := w.Session.TimeBank

	advanceFor(w, time.Second)

	if w.Session.TimeBank != bankBefore {
		t.Errorf("bank decayed %v during the lock", bankBefore-w.Session.TimeBank)
	}
	if w.Session.MatchElapsed != 0 {
		t.Errorf("match time advanced %v during the lock", w.Session.MatchElapsed)
	}
}
