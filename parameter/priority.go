package parameter

// System Execution Priorities (lower runs first)
// Transition runs first so the lock countdown is authoritative for the tick,
// adaptation runs last so it sees the tick's final statistics
const (
	PriorityTransition = 10
	PriorityTimekeeper = 20
	PriorityLifecycle  = 30
	PrioritySpawn      = 40
	PriorityScore      = 50
	PriorityAdaptation = 60
)
