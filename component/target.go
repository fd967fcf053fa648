package component

import (
	"time"

	"github.com/lixenwraith/gridstrike/core"
)

// Phase is a target's lifecycle state.
// Legal sequences: Entering→Exposed→Struck→Exiting and
// Entering→Exposed→Exiting; Exiting always ends in removal
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseExposed
	PhaseStruck
	PhaseExiting
)

// String returns the phase name for snapshots and logs
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseExposed:
		return "exposed"
	case PhaseStruck:
		return "struck"
	case PhaseExiting:
		return "exiting"
	}
	return "unknown"
}

// Category is a target's kind, deciding scoring and side effects on hit
type Category int

const (
	CategoryCommon Category = iota
	CategoryBonus
	CategoryHazard
	CategoryChill
)

// String returns the category name for snapshots and logs
func (c Category) String() string {
	switch c {
	case CategoryCommon:
		return "common"
	case CategoryBonus:
		return "bonus"
	case CategoryHazard:
		return "hazard"
	case CategoryChill:
		return "chill"
	}
	return "unknown"
}

// TargetComponent is one active target. Created by the spawn system,
// mutated only by the lifecycle system and a successful hit resolution
type TargetComponent struct {
	ID       core.Entity
	Cell     int
	Category Category

	Phase        Phase
	PhaseElapsed time.Duration

	// SpawnedAt is game time at creation, for reaction measurement
	SpawnedAt time.Duration

	// Randomized per-phase durations, fixed at creation
	EntryDuration   time.Duration
	ExposedDuration time.Duration
	StruckDuration  time.Duration
	ExitDuration    time.Duration

	Struck bool

	// Skin is an opaque appearance token from the appearance provider
	Skin string
}

// PhaseDuration returns the randomized duration of the current phase
func (t *TargetComponent) PhaseDuration() time.Duration {
	switch t.Phase {
	case PhaseEntering:
		return t.EntryDuration
	case PhaseExposed:
		return t.ExposedDuration
	case PhaseStruck:
		return t.StruckDuration
	default:
		return t.ExitDuration
	}
}

// Hittable reports whether a strike may resolve against this target
func (t *TargetComponent) Hittable() bool {
	return t.Phase == PhaseEntering || t.Phase == PhaseExposed
}
