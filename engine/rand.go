package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the injectable random source behind every lottery and jitter,
// keeping spawn and category selection reproducible in tests
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source for the given seed
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DurationIn draws uniformly from [min,max]
func DurationIn(rng Rand, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rng.Float64()*float64(max-min))
}
