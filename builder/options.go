// SPDX-License-Identifier: MIT
// Package: lvsquare/builder
//
// options.go: functional options and the resolved builder configuration.
//
// Contract:
//   • BuilderOption mutates builderConfig; options apply in order, last wins.
//   • Option constructors panic on meaningless input; Build never does.
//   • rng is nil unless WithSeed/WithRand is given (no hidden randomness).

package builder

import "math/rand"

// BuilderOption customizes a Build call.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}
