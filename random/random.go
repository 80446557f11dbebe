// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random provides the seedable randomness used by the trainer:
// a Box–Muller Gaussian sampler and an unbiased index permutation.
package random

import (
	"math/rand"

	"github.com/born-ml/ann/internal/random"
)

// Source is a uniform random source. *rand.Rand satisfies it.
type Source = random.Source

// Gaussian draws samples from N(mean, variance).
type Gaussian = random.Gaussian

// Permuter reorders index lists uniformly at random.
type Permuter = random.Permuter

// NewSource returns a deterministic source for seed >= 0 and a time seeded
// source for seed < 0.
func NewSource(seed int64) *rand.Rand {
	return random.NewSource(seed)
}

// NewGaussian creates a Gaussian sampler consuming src.
//
// Example:
//
//	g := random.NewGaussian(random.NewSource(42))
//	v, err := g.NextNormal(0, 1)
func NewGaussian(src Source) *Gaussian {
	return random.NewGaussian(src)
}

// NewPermuter creates a Permuter consuming src.
func NewPermuter(src Source) *Permuter {
	return random.NewPermuter(src)
}

// Range returns the indices 0..n-1 in order.
func Range(n int) []int {
	return random.Range(n)
}
