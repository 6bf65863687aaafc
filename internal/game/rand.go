package game

import (
	"math/rand"
	"time"
)

// Rand is the randomness source the engine draws from. Threading it through
// every roll keeps outcomes replayable under a fixed seed.
type Rand interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform value in [0,n).
	Intn(n int) int
}

// NewRand returns a seeded source for deterministic runs.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeRand returns a source seeded from the wall clock.
func NewTimeRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
