// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilVertex indicates a nil source or target vertex.
	ErrNilVertex = errors.New("dijkstra: vertex is nil")

	// ErrMalformedPath indicates a path whose consecutive vertices share no edge.
	ErrMalformedPath = errors.New("dijkstra: malformed path")

	// ErrFrontierCorrupt wraps any heap error raised during a search. It means
	// the scratch state and the frontier disagree and the search was aborted.
	ErrFrontierCorrupt = errors.New("dijkstra: frontier out of sync with scratch state")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a search.
//
// MaxDistance – vertices whose distance exceeds this value are not settled.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
	}
}
