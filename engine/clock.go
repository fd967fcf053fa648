package engine

import (
	"time"

	"github.com/lixenwraith/gridstrike/parameter"
)

// SessionClock accumulates simulated time from externally supplied deltas.
// It is the single timing authority for every system; the core has no
// real-time dependency
type SessionClock struct {
	elapsed time.Duration
}

// NewSessionClock starts at zero elapsed simulated time
func NewSessionClock() *SessionClock {
	return &SessionClock{}
}

// Advance adds a capped delta and returns the amount actually applied.
// The cap drops catch-up jumps after the host view was backgrounded
func (c *SessionClock) Advance(delta time.Duration) time.Duration {
	if delta <= 0 {
		return 0
	}
	if delta > parameter.TickDeltaMax {
		delta = parameter.TickDeltaMax
	}
	c.elapsed += delta
	return delta
}

// Now returns total elapsed simulated time
func (c *SessionClock) Now() time.Duration {
	return c.elapsed
}

// Reset returns the clock to zero for a new match
func (c *SessionClock) Reset() {
	c.elapsed = 0
}
