// SPDX-License-Identifier: MIT
// Package: lvspmv/gen
//
// options.go: functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package gen

import "math/rand"

// Option customizes a generator by mutating genConfig before sampling.
type Option func(*genConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 maps to DefaultSeed so the zero value stays reproducible.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The generator advances r; do not share r across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithMaxMagnitude sets the exclusive bound k of the integer part of
// generated magnitudes (values lie in (−k, k)). Panics when k < 1.
func WithMaxMagnitude(k int) Option {
	if k < 1 {
		panic("gen: WithMaxMagnitude: k must be >= 1")
	}
	return func(c *genConfig) {
		c.maxMagnitude = k
	}
}
