package parameter

import "time"

// Stage Transition
const (
	// TransitionLockDuration freezes gameplay while the stage-clear
	// notice is shown; only the lock countdown itself advances
	TransitionLockDuration = 2500 * time.Millisecond
)
