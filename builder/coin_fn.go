// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// CoinFn decides how many coins chamber id holds. rng may be nil.
type CoinFn func(rng *rand.Rand, id int64) int

// NoCoins leaves every chamber empty.
func NoCoins(_ *rand.Rand, _ int64) int { return 0 }

// ScatterCoinFn fills each chamber with probability p, drawing 1..max coins.
// A nil rng yields empty chambers. Panics unless p ∈ [0, 1] and max ≥ 1.
func ScatterCoinFn(p float64, max int) CoinFn {
	if err := validateProbability("ScatterCoinFn", p); err != nil {
		panic(err.Error())
	}
	if max < 1 {
		panic(fmt.Sprintf("ScatterCoinFn: max must be ≥ 1, got %d", max))
	}

	return func(rng *rand.Rand, _ int64) int {
		if rng == nil || rng.Float64() >= p {
			return 0
		}

		return 1 + rng.Intn(max)
	}
}
