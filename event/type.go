package event

// Type identifies a game event
type Type int

const (
	// === Session Events ===

	// EventMatchReset restarts the session; systems re-Init
	// Trigger: World.Reset | Consumer: all systems | Payload: nil
	EventMatchReset Type = iota

	// EventMatchEnded fires when the time bank reaches zero
	// Trigger: TimekeeperSystem | Consumer: presentation, profile | Payload: *MatchEndedPayload
	EventMatchEnded

	// === Input Events ===

	// EventStrikeRequest carries a hit-test-resolved strike
	// Trigger: World.ResolveStrike | Consumer: ScoreSystem | Payload: *StrikeRequestPayload
	EventStrikeRequest

	// EventEmptyStrikeRequest carries an explicit empty-cell input
	// Trigger: World.ResolveMiss | Consumer: ScoreSystem | Payload: nil
	EventEmptyStrikeRequest

	// === Target Events ===

	// EventTargetSpawned announces a new active target
	// Trigger: SpawnSystem | Consumer: presentation | Payload: *TargetSpawnedPayload
	EventTargetSpawned

	// EventTargetHit announces a resolved strike
	// Trigger: ScoreSystem | Consumer: presentation, audio | Payload: *TargetHitPayload
	EventTargetHit

	// EventTargetMiss announces an exposure timeout or empty strike
	// Trigger: LifecycleSystem, ScoreSystem | Consumer: ScoreSystem, presentation | Payload: *TargetMissPayload
	EventTargetMiss

	// EventTargetRemoved announces exit-phase completion, freeing the cell
	// Trigger: LifecycleSystem | Consumer: SpawnSystem (cooldown) | Payload: *TargetRemovedPayload
	EventTargetRemoved

	// EventSlowApplied announces a chill hit opening the slow window
	// Trigger: ScoreSystem | Consumer: presentation | Payload: *SlowAppliedPayload
	EventSlowApplied

	// === Adaptation Events ===

	// EventCheckpoint reports a performance evaluation
	// Trigger: AdaptationSystem | Consumer: presentation | Payload: *CheckpointPayload
	EventCheckpoint

	// EventTimeBonus reports a time bank credit
	// Trigger: AdaptationSystem | Consumer: presentation, audio | Payload: *TimeBonusPayload
	EventTimeBonus

	// EventPromotionRequested opens the pending-confirmation window
	// Trigger: AdaptationSystem | Consumer: TransitionSystem | Payload: *PromotionPayload
	EventPromotionRequested

	// EventPromotionCancelled abandons a pending promotion
	// Trigger: AdaptationSystem | Consumer: TransitionSystem | Payload: *PromotionPayload
	EventPromotionCancelled

	// EventDemotionRequested drops the level immediately, no lock or grace
	// Trigger: AdaptationSystem | Consumer: TransitionSystem | Payload: *DemotionPayload
	EventDemotionRequested

	// === Transition Events ===

	// EventLevelCommitted announces a committed level change (stage clear)
	// Trigger: TransitionSystem | Consumer: SpawnSystem (reset), presentation, audio | Payload: *LevelCommittedPayload
	EventLevelCommitted

	// EventDemoted announces a committed demotion
	// Trigger: TransitionSystem | Consumer: SpawnSystem (reset), presentation, audio | Payload: *DemotionPayload
	EventDemoted

	// EventGraceEnded announces grace-window expiry
	// Trigger: TransitionSystem | Consumer: presentation | Payload: *LevelCommittedPayload
	EventGraceEnded
)
