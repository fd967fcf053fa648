package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickDeltaMax caps a single simulated-time advance. Protects against
	// catch-up jumps after the hosting terminal was suspended
	TickDeltaMax = 80 * time.Millisecond

	// FrameInterval is the render loop target (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// EventQueueInitialCap is the starting capacity of the per-tick event queue
	EventQueueInitialCap = 64
)
