// SPDX-License-Identifier: MIT

// Package matrix: functional options for the random source used by
// Randomize.
//
// Contract:
//   - Options are functional (type RandOption func(*randConfig)).
//   - Option constructors validate and PANIC on meaningless inputs (nil);
//     operations themselves never panic.
//   - Determinism is explicit: seed with WithSeed or hand over WithRand.
//     Without either, NewRand seeds from the wall clock.
package matrix

import (
	"math/rand"
	"time"
)

// randConfig aggregates the random source knobs.
type randConfig struct {
	rng *rand.Rand
}

// RandOption customizes NewRand.
type RandOption func(*randConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) RandOption {
	return func(c *randConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand hands over an existing RNG. Panics on nil.
func WithRand(r *rand.Rand) RandOption {
	if r == nil {
		panic("matrix: WithRand(nil)")
	}
	return func(c *randConfig) {
		c.rng = r
	}
}

// NewRand returns the RNG selected by opts; later options override earlier.
func NewRand(opts ...RandOption) *rand.Rand {
	var c randConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c.rng
}
