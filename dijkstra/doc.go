// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over the sewer graph
// (core.Graph) with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(src, dst) returns the vertex sequence of one minimum-cost
//     path, src first and dst last. src == dst yields the one-element path
//     [src] of cost 0. If dst cannot be reached, the result is an empty slice
//     and a nil error: "no path" is an outcome, not a failure.
//   - Tree(src) runs the same search to exhaustion and returns a Result that
//     answers Dist(v) and PathTo(v) for every reachable v.
//   - PathCost(path) and RewardSum(path) measure an already computed path.
//
// Frontier:
//
//	The frontier is an indexable min-heap (package heap). When a shorter
//	route to a frontier vertex is found, its priority is updated in place
//	instead of pushing a duplicate, so every vertex is extracted at most once.
//
// Scratch state:
//
//	Each call allocates a fresh arena of (distance, predecessor, settled)
//	records keyed by vertex. Nothing is cached between calls, so coin pickups
//	between queries can never leak stale state into a later search.
//
// Determinism:
//
//	Exits are scanned in ascending neighbor ID and the heap is deterministic,
//	so equal-cost ties are broken the same way on every run. A targeted run
//	and a Tree run from the same source settle vertices in the same order,
//	hence Tree(src).PathTo(dst) equals ShortestPath(src, dst).
//
// Options:
//
//	– WithMaxDistance(d): vertices farther than d from the source are never
//	  settled; a target beyond d reports "no path".
//
// Errors (sentinel):
//
//	– ErrNilVertex       a nil source or target.
//	– ErrMalformedPath   PathCost over consecutive vertices that share no edge.
//	– ErrBadMaxDistance  (panic) WithMaxDistance with a negative value.
//	– heap errors        wrapped with ErrFrontierCorrupt; they indicate a
//	                     bookkeeping bug and abort the search.
//
// Complexity:
//
//	Time O((V + E) log V), space O(V).
//
// Thread safety:
//
//	Calls are independent, but the graph must not be mutated concurrently.
package dijkstra
