package system

import (
	"time"

	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
	"github.com/lixenwraith/gridstrike/parameter"
	"github.com/lixenwraith/gridstrike/vmath"
)

// SpawnSystem decides where, when and what to spawn under the current
// difficulty profile. Cell selection is a cascading-relaxation pipeline;
// category selection is a weighted lottery over blended level tables
type SpawnSystem struct {
	world *engine.World

	// nextSpawnAt is the scheduled attempt time in simulated time
	nextSpawnAt time.Duration

	// cooldownUntil blocks cell reuse after a target's removal
	cooldownUntil map[int]time.Duration

	// recent is the anti-repeat window, most recent last
	recent []int

	enabled bool
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world:         world,
		cooldownUntil: make(map[int]time.Duration),
	}
	s.Init()
	return s
}

// Init resets session state for a new match
func (s *SpawnSystem) Init() {
	clear(s.cooldownUntil)
	s.recent = s.recent[:0]
	s.nextSpawnAt = 0
	s.enabled = true
}

// Name returns system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// EventTypes returns the event types SpawnSystem handles
func (s *SpawnSystem) EventTypes() []event.Type {
	return []event.Type{
		event.EventMatchReset,
		event.EventTargetRemoved,
		event.EventLevelCommitted,
		event.EventDemoted,
	}
}

// HandleEvent maintains cooldown and recency bookkeeping
func (s *SpawnSystem) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventMatchReset:
		s.Init()

	case event.EventTargetRemoved:
		if payload, ok := ev.Payload.(*event.TargetRemovedPayload); ok {
			s.cooldownUntil[payload.Cell] = s.world.Time.Now + parameter.CellCooldown
		}

	case event.EventLevelCommitted, event.EventDemoted:
		// Level geometry changed: cooldowns and recency reference stale
		// cell indices
		clear(s.cooldownUntil)
		s.recent = s.recent[:0]
		s.nextSpawnAt = s.world.Time.Now
	}
}

// Update attempts a spawn when the scheduled time has passed and the
// population is below the profile's ceiling
func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	sess := s.world.Session
	if sess.Ended || sess.Locked() {
		return
	}

	now := s.world.Time.Now
	if now < s.nextSpawnAt {
		return
	}

	profile := engine.ComputeProfile(sess)
	if s.world.Targets.Count() >= profile.ConcurrencyCeiling {
		return
	}

	cell, ok := s.pickCell(profile)
	if !ok {
		// Starvation: retry after a short fixed backoff, never an error
		s.nextSpawnAt = now + parameter.StarvationBackoff
		return
	}

	s.spawnTarget(cell, profile)
	s.scheduleNext(profile)
}

// pickCell runs the relaxation pipeline: each stage only applies when the
// previous one yields no candidates, keeping the policy auditable stage by
// stage. The final pick is uniform over the surviving set
func (s *SpawnSystem) pickCell(profile engine.Profile) (int, bool) {
	unlockedSet := s.unlockedCells(profile)
	restricted := profile.UnlockedCells < s.world.Grid.Size()

	free := func(c int) bool { return !s.world.Targets.Occupied(c) }
	cooled := func(c int) bool { return s.world.Time.Now >= s.cooldownUntil[c] }
	fresh := func(c int) bool { return !s.isRecent(c) }
	unlocked := func(c int) bool { return unlockedSet[c] }

	stages := []func(c int) bool{
		func(c int) bool { return unlocked(c) && free(c) && cooled(c) && fresh(c) },
		func(c int) bool { return unlocked(c) && free(c) && cooled(c) },
		func(c int) bool { return unlocked(c) && free(c) },
	}
	if restricted {
		// Unlock restriction relaxes last, still preferring cooled cells
		stages = append(stages,
			func(c int) bool { return free(c) && cooled(c) },
			func(c int) bool { return free(c) },
		)
	}

	for _, pass := range stages {
		var candidates []int
		for _, cell := range s.world.Grid.Cells {
			if pass(cell.Index) {
				candidates = append(candidates, cell.Index)
			}
		}
		if len(candidates) > 0 {
			return candidates[s.world.Rand.IntN(len(candidates))], true
		}
	}
	return 0, false
}

// unlockedCells returns the center-out prefix the profile permits
func (s *SpawnSystem) unlockedCells(profile engine.Profile) map[int]bool {
	order := s.world.Grid.CenterOrder()
	n := profile.UnlockedCells
	if n > len(order) {
		n = len(order)
	}
	set := make(map[int]bool, n)
	for _, idx := range order[:n] {
		set[idx] = true
	}
	return set
}

func (s *SpawnSystem) isRecent(cell int) bool {
	for _, c := range s.recent {
		if c == cell {
			return true
		}
	}
	return false
}

func (s *SpawnSystem) rememberCell(cell int) {
	s.recent = append(s.recent, cell)
	if len(s.recent) > parameter.RecentCellWindow {
		s.recent = s.recent[1:]
	}
}

// spawnTarget creates the target with randomized phase durations
func (s *SpawnSystem) spawnTarget(cell int, profile engine.Profile) {
	sess := s.world.Session
	now := s.world.Time.Now
	rng := s.world.Rand

	exposure := engine.DurationIn(rng, profile.ExposureMin, profile.ExposureMax)
	if sess.SlowActive(now) {
		exposure = time.Duration(float64(exposure) * parameter.SlowExposureMultiplier)
	}

	t := &component.TargetComponent{
		ID:              s.world.Targets.NextSerial(),
		Cell:            cell,
		Category:        s.drawCategory(),
		Phase:           component.PhaseEntering,
		SpawnedAt:       now,
		EntryDuration:   engine.DurationIn(rng, parameter.EntryDurationMin, parameter.EntryDurationMax),
		ExposedDuration: exposure,
		StruckDuration:  engine.DurationIn(rng, parameter.StruckDurationMin, parameter.StruckDurationMax),
		ExitDuration:    engine.DurationIn(rng, parameter.ExitDurationMin, parameter.ExitDurationMax),
	}
	if s.world.Appearance != nil {
		t.Skin = s.world.Appearance()
	}

	s.world.Targets.Add(t)
	s.rememberCell(cell)

	s.world.PushEvent(event.EventTargetSpawned, &event.TargetSpawnedPayload{
		Target:   t.ID,
		Cell:     cell,
		Category: t.Category,
	})
}

// scheduleNext offsets the next attempt. Below the concurrency floor the
// attempt is immediate so the floor is met quickly
func (s *SpawnSystem) scheduleNext(profile engine.Profile) {
	sess := s.world.Session
	now := s.world.Time.Now

	if s.world.Targets.Count() < profile.ConcurrencyFloor {
		s.nextSpawnAt = now
		return
	}

	jitter := 1 + (s.world.Rand.Float64()*2-1)*parameter.SpawnJitterRatio
	interval := time.Duration(float64(profile.SpawnInterval) * jitter)
	if sess.SlowActive(now) {
		interval = time.Duration(float64(interval) * parameter.SlowSpawnIntervalMultiplier)
	}
	s.nextSpawnAt = now + interval
}

// drawCategory runs the weighted lottery over the blended tables
func (s *SpawnSystem) drawCategory() component.Category {
	w := s.currentWeights()
	total := w.Total()

	roll := s.world.Rand.Float64() * total
	switch {
	case roll < w.Common:
		return component.CategoryCommon
	case roll < w.Common+w.Bonus:
		return component.CategoryBonus
	case roll < w.Common+w.Bonus+w.Hazard:
		return component.CategoryHazard
	default:
		return component.CategoryChill
	}
}

// currentWeights blends the level tables by tier progress, then applies
// level-entry easing, grace suppression and late-match time pressure.
// Every weight is floored above zero to keep the lottery well-defined
func (s *SpawnSystem) currentWeights() parameter.CategoryWeights {
	sess := s.world.Session
	spec := parameter.Level(sess.Level)

	var w parameter.CategoryWeights
	if sess.EaseActive {
		// Ramp from the departed level's late-tier table into the new
		// level's early-tier table while territory unlocks
		prev := parameter.Level(sess.EasePrevLevel)
		ease := vmath.SmoothStep(sess.EaseRatio())
		w = lerpWeights(prev.WeightsEnd, spec.WeightsStart, ease)
		w.Hazard *= vmath.Lerp(parameter.EaseHazardFloor, 1, ease)
		w.Common *= vmath.Lerp(parameter.EaseCommonBoost, 1, ease)
	} else {
		blend := vmath.Clamp01(sess.TierProgress / parameter.ProgressMax)
		if sess.Transition == engine.TransitionGrace {
			blend = min(blend, parameter.GraceBlendCap)
		}
		w = lerpWeights(spec.WeightsStart, spec.WeightsEnd, blend)
	}

	if sess.Transition == engine.TransitionGrace {
		w.Hazard *= parameter.GraceHazardMultiplier
	}

	if sess.TimeBank < parameter.TimePressureThreshold {
		w.Bonus *= parameter.TimePressureMultiplier
		w.Hazard *= parameter.TimePressureMultiplier
	}

	w.Common = max(w.Common, parameter.WeightFloor)
	w.Bonus = max(w.Bonus, parameter.WeightFloor)
	w.Hazard = max(w.Hazard, parameter.WeightFloor)
	w.Chill = max(w.Chill, parameter.WeightFloor)
	return w
}

func lerpWeights(a, b parameter.CategoryWeights, t float64) parameter.CategoryWeights {
	return parameter.CategoryWeights{
		Common: vmath.Lerp(a.Common, b.Common, t),
		Bonus:  vmath.Lerp(a.Bonus, b.Bonus, t),
		Hazard: vmath.Lerp(a.Hazard, b.Hazard, t),
		Chill:  vmath.Lerp(a.Chill, b.Chill, t),
	}
}
