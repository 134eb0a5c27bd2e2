// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/mcdiver/core"
)

// PathCost returns the sum of edge weights between consecutive vertices of
// path. A path of zero or one vertex costs 0.
//
// Returns ErrMalformedPath if a vertex is nil or two consecutive vertices
// share no edge.
//
// Complexity: O(len(path)).
func PathCost(path []*core.Vertex) (int64, error) {
	var sum int64
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		if u == nil || v == nil {
			return 0, fmt.Errorf("%w: nil vertex at index %d", ErrMalformedPath, i)
		}
		e, err := u.Edge(v)
		if err != nil {
			return 0, fmt.Errorf("%w: step %d %v→%v: %w", ErrMalformedPath, i, u, v, err)
		}
		sum += e.Weight()
	}

	return sum, nil
}

// RewardSum returns the coins currently lying on the vertices of path,
// both endpoints included. Nil entries are skipped.
func RewardSum(path []*core.Vertex) int {
	sum := 0
	for _, v := range path {
		if v != nil {
			sum += v.Coins()
		}
	}

	return sum
}
