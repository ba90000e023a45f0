package chaosgame

import (
	"math/rand/v2"
	"time"
)

// Source is the random number generator an Engine draws from. Both point
// sampling and vertex selection consume the same Source, so a seeded Source
// reproduces the whole point sequence.
//
// *rand.Rand from math/rand/v2 satisfies Source.
type Source interface {
	// Float64 returns a number in [0, 1).
	Float64() float64

	// IntN returns a number in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// seedMix decorrelates the two PCG words derived from a single seed.
const seedMix = 0x9e3779b97f4a7c15

// NewSource returns a deterministic Source for the given seed.
// A Source is not safe for concurrent use; Engine serializes access.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^seedMix))
}

// newTimeSource seeds a Source from the wall clock.
func newTimeSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}
