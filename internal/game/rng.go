package game

import (
	"math"
	"math/rand"
	"time"
)

const (
	lcgMul = 1664525
	lcgInc = 1013904223
	lcgMod = 1 << 32
)

// Rand is the random source the engine draws from. Tests substitute fixed
// sequences; the real implementation is the seeded LCG below.
type Rand interface {
	Next() float64
	NextInt(lo, hi int) int
}

// LCG is a linear congruential generator whose full state is one uint32
// seed, so a saved game replays identically after restore.
type LCG struct {
	seed uint32
}

// NewLCG coerces a zero seed to 1; the generator would otherwise emit a
// low-quality opening run.
func NewLCG(seed int64) *LCG {
	s := uint32(uint64(seed) % lcgMod)
	if s == 0 {
		s = 1
	}
	return &LCG{seed: s}
}

// SeedFromNow builds a seed from the clock mixed with process randomness.
func SeedFromNow() int64 {
	return time.Now().UnixNano() ^ rand.Int63()
}

// Next advances the state and returns a value in [0, 1).
func (r *LCG) Next() float64 {
	r.seed = uint32((uint64(r.seed)*lcgMul + lcgInc) % lcgMod)
	return float64(r.seed) / float64(lcgMod)
}

// NextInt returns an integer in [lo, hi], both inclusive, consuming exactly
// one draw. A degenerate range returns lo without drawing.
func (r *LCG) NextInt(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + int(math.Floor(r.Next()*float64(hi-lo+1)))
}

// Seed exposes the current state for persistence.
func (r *LCG) Seed() uint32 { return r.seed }

// Restore resets the state to a persisted value.
func (r *LCG) Restore(seed uint32) {
	if seed == 0 {
		seed = 1
	}
	r.seed = seed
}
