package scene

import (
	"math/rand"
	"time"
)

// Rand is a uniform random source in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded generator. Seed 0 seeds from the wall clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// between draws uniformly from [lo, hi).
func between(rnd Rand, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

// pick draws an index in [0, n).
func pick(rnd Rand, n int) int {
	i := int(rnd.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
