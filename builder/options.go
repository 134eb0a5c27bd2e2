// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Option customizes Sewer.
type Option func(*builderConfig)

// WithRand uses r for every random choice. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a private RNG.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the pipe weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithCoinFn sets the chamber coin generator. Panics on nil.
func WithCoinFn(fn CoinFn) Option {
	if fn == nil {
		panic("builder: WithCoinFn(nil)")
	}
	return func(c *builderConfig) {
		c.coinFn = fn
	}
}

// WithLoopProbability sets the chance that each grid pipe outside the
// spanning tree is added. 0 yields a tree, 1 the full grid.
// Values outside [0, 1] make Sewer fail with ErrInvalidProbability.
func WithLoopProbability(p float64) Option {
	return func(c *builderConfig) {
		if err := validateProbability("WithLoopProbability", p); err != nil {
			c.err = err
			return
		}
		c.loopProb = p
	}
}
