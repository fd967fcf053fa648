package engine

import (
	"time"

	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/core"
	"github.com/lixenwraith/gridstrike/vmath"
)

// TargetView is one target in a presentation snapshot
type TargetView struct {
	ID       core.Entity
	Cell     int
	Row      int
	Col      int
	Category component.Category
	Phase    component.Phase

	// Progress is normalized elapsed time within the current phase
	Progress float64

	Skin string
}

// Snapshot is the read-only per-tick view consumed by the presentation
// sink. The core never blocks on its consumers
type Snapshot struct {
	Level        int
	Rows         int
	Cols         int
	Score        int
	Combo        int
	BestCombo    int
	TimeBank     time.Duration
	TierProgress float64
	Skill        float64
	Transition   TransitionState
	Locked       bool
	SlowActive   bool
	MatchElapsed time.Duration
	Ended        bool
	Paused       bool

	Targets []TargetView
}

// Snapshot builds the current presentation view
func (w *World) Snapshot() Snapshot {
	s := w.Session
	snap := Snapshot{
		Level:        s.Level,
		Rows:         w.Grid.Rows,
		Cols:         w.Grid.Cols,
		Score:        s.Score,
		Combo:        s.Combo,
		BestCombo:    s.BestCombo,
		TimeBank:     s.TimeBank,
		TierProgress: s.TierProgress,
		Skill:        s.Skill,
		Transition:   s.Transition,
		Locked:       s.Locked(),
		SlowActive:   s.SlowActive(w.Time.Now),
		MatchElapsed: s.MatchElapsed,
		Ended:        s.Ended,
		Paused:       w.paused,
		Targets:      make([]TargetView, 0, w.Targets.Count()),
	}

	for _, t := range w.Targets.All() {
		progress := 1.0
		if d := t.PhaseDuration(); d > 0 {
			progress = vmath.Clamp01(float64(t.PhaseElapsed) / float64(d))
		}
		cell := w.Grid.Cells[t.Cell]
		snap.Targets = append(snap.Targets, TargetView{
			ID:       t.ID,
			Cell:     t.Cell,
			Row:      cell.Row,
			Col:      cell.Col,
			Category: t.Category,
			Phase:    t.Phase,
			Progress: progress,
			Skin:     t.Skin,
		})
	}
	return snap
}
