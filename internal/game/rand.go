// internal/game/rand.go
//
// Injectable randomness shared by the engines.
//   - Rand: the one-method source every engine draws from.
//   - NewRand: PCG-backed source, clock-seeded when no seed is given.
//   - Shuffle/Pick: generic helpers over a Rand.

package game

import (
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// clockSeeds separates sources created within the same clock tick.
var clockSeeds atomic.Uint64

// Rand is the injectable source of randomness used for mine placement,
// shuffles, dice rolls and word/color/shape picks. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n > 0.
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand. A zero seed derives one from the clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) ^ (clockSeeds.Add(1) * 0xbf58476d1ce4e5b9)
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle[T any](r Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Pick returns a uniformly chosen element of s. s must be non-empty.
func Pick[T any](r Rand, s []T) T {
	return s[r.IntN(len(s))]
}
