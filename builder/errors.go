// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a layout with fewer than two chambers.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that no RNG was configured (see WithSeed, WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps a core error raised while assembling the graph.
var ErrConstructFailed = errors.New("builder: construction failed")
