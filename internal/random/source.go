// Package random provides the randomness collaborators of the trainer: a
// seedable uniform source, a Box–Muller Gaussian sampler built on top of it,
// and an unbiased permutation of index lists.
//
// Nothing in this package is safe for concurrent use; the trainer is
// single-threaded and owns its sources.
package random

import (
	"math/rand"
	"time"
)

// Source is a uniform random source.
//
// *rand.Rand satisfies Source.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewSource returns a deterministic source for seed >= 0 and a time seeded
// source for seed < 0.
func NewSource(seed int64) *rand.Rand {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Weight initialization and shuffling are not security-critical
}
