package engine

import (
	"math"
	"math/rand"

	"lukechampine.com/frand"
)

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position increments with every call, so a trace can show how many draws
// each round consumed.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// NewSeed draws a fresh seed from the system CSPRNG for unseeded sessions.
func NewSeed() int64 {
	return int64(frand.Uint64n(math.MaxInt64))
}

// Intn returns a random integer in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of RNG calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
