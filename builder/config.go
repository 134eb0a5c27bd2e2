// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// builderConfig aggregates all knobs used by Sewer.
// It is passed by value; callers never see it.
type builderConfig struct {
	// RNG for every stochastic choice; nil means no randomness is available.
	rng *rand.Rand
	// Pipe weight generator.
	weightFn WeightFn
	// Chamber coin generator.
	coinFn CoinFn
	// Probability of adding each non-tree grid pipe.
	loopProb float64

	// first invalid option, surfaced by Sewer
	err error
}

// Deterministic defaults.
const (
	DefaultMinWeight       = int64(1)
	DefaultMaxWeight       = int64(9)
	DefaultLoopProbability = 0.2
	DefaultCoinProbability = 0.35
	DefaultMaxCoins        = 9
)

// newBuilderConfig constructs a config with defaults and applies all options
// in order (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		weightFn: UniformWeightFn(DefaultMinWeight, DefaultMaxWeight),
		coinFn:   ScatterCoinFn(DefaultCoinProbability, DefaultMaxCoins),
		loopProb: DefaultLoopProbability,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validateProbability ensures p ∈ [0, 1].
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%g: %w", method, p, ErrInvalidProbability)
	}

	return nil
}
