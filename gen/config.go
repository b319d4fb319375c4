// SPDX-License-Identifier: MIT
// Package: lvspmv/gen
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = rand seeded with DefaultSeed
//   • maxMagnitude = DefaultMaxMagnitude (values in (−10, 10))

package gen

import "math/rand"

// Defaults (single source of truth).
const (
	// DefaultSeed is used when no RNG is configured or WithSeed(0) is given.
	DefaultSeed int64 = 1

	// DefaultMaxMagnitude bounds the integer part of generated magnitudes.
	DefaultMaxMagnitude = 10

	// trialResolution makes the density trial percent-granular:
	// a cell is non-zero when (r mod 100)/100 < density.
	trialResolution = 100
)

// genConfig aggregates all knobs used by generators.
type genConfig struct {
	rng          *rand.Rand // never nil after newGenConfig
	maxMagnitude int        // >= 1
}

// newGenConfig applies options in order (later overrides earlier) on top of
// deterministic defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{maxMagnitude: DefaultMaxMagnitude}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(DefaultSeed)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 ⇒ DefaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// value draws one magnitude-plus-sign sample: (k + u) · ±1.
// Draw order is fixed (integer part, fraction, sign) for reproducibility.
func (c genConfig) value() float64 {
	v := float64(c.rng.Intn(c.maxMagnitude)) + c.rng.Float64()
	if c.rng.Intn(2) != 0 {
		v = -v
	}

	return v
}
