// SPDX-License-Identifier: MIT

// Package core defines the sewer graph model used by every other package:
// Vertex, Edge and Graph.
//
// The graph is undirected and weighted with non-negative integer edge
// lengths. Each Vertex owns its exits (incident edges) and carries a coin
// count. The topology is immutable once built; the only mutation after
// construction is Vertex.TakeCoins, which clears a vertex's coins when the
// diver steps on it.
//
// Determinism:
//
//   - Graph.Vertices() is sorted by vertex ID.
//   - Vertex.Exits() and Vertex.Neighbors() are sorted by the ID of the
//     opposite endpoint.
//   - Graph.Edges() preserves insertion order.
//
// Constraints enforced by AddEdge:
//
//	– ErrVertexNotFound       either endpoint was never added.
//	– ErrNegativeWeight       weight < 0.
//	– ErrLoopNotAllowed       a == b.
//	– ErrMultiEdgeNotAllowed  an edge between a and b already exists.
//
// Concurrency:
//
//	The model is single-threaded by contract. No locks are taken; callers
//	that share a Graph across goroutines must synchronize externally. The
//	batch runner in package sim gives every goroutine its own Graph.
//
// Complexity:
//
//	AddVertex, AddEdge, Vertex, Edge lookups are O(1) amortized.
//	Vertices() is O(V log V) on first call after a mutation, O(V) after.
package core
