// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount and Edge accessors.
// Determinism:
//   - Edges() returns edges in insertion order.

package core

import "fmt"

// AddEdge connects vertices a and b with an undirected edge of the given weight.
//
// Steps:
//  1. Validate weight (0..MaxWeight) and loop constraint.
//  2. Resolve both endpoints (ErrVertexNotFound).
//  3. Reject parallel edges (ErrMultiEdgeNotAllowed).
//  4. Store the edge and attach it to both endpoints.
//
// Complexity: O(deg(a) + deg(b)) for the sorted insert, O(1) otherwise.
func (g *Graph) AddEdge(a, b int64, weight int64) (*Edge, error) {
	// 1) Input validation
	if weight < 0 {
		return nil, fmt.Errorf("AddEdge(%d, %d, w=%d): %w", a, b, weight, ErrNegativeWeight)
	}
	if weight > MaxWeight {
		return nil, fmt.Errorf("AddEdge(%d, %d, w=%d): %w", a, b, weight, ErrWeightTooLarge)
	}
	if a == b {
		return nil, fmt.Errorf("AddEdge(%d, %d): %w", a, b, ErrLoopNotAllowed)
	}

	// 2) Resolve endpoints
	va, ok := g.vertices[a]
	if !ok {
		return nil, fmt.Errorf("AddEdge(%d, %d): vertex %d: %w", a, b, a, ErrVertexNotFound)
	}
	vb, ok := g.vertices[b]
	if !ok {
		return nil, fmt.Errorf("AddEdge(%d, %d): vertex %d: %w", a, b, b, ErrVertexNotFound)
	}

	// 3) Multi-edge check
	if va.IsNeighbor(vb) {
		return nil, fmt.Errorf("AddEdge(%d, %d): %w", a, b, ErrMultiEdgeNotAllowed)
	}

	// 4) Store and attach
	e := &Edge{from: va, to: vb, weight: weight}
	g.edges = append(g.edges, e)
	va.attach(e, vb)
	vb.attach(e, va)

	return e, nil
}

// Edges returns all edges in insertion order.
// The returned slice is shared; callers must not modify it.
func (g *Graph) Edges() []*Edge { return g.edges }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// From returns the first endpoint given to AddEdge.
func (e *Edge) From() *Vertex { return e.from }

// To returns the second endpoint given to AddEdge.
func (e *Edge) To() *Vertex { return e.to }

// Weight returns the edge length.
func (e *Edge) Weight() int64 { return e.weight }

// Other returns the endpoint of e that is not v.
// Returns ErrNotEndpoint if v is neither endpoint.
func (e *Edge) Other(v *Vertex) (*Vertex, error) {
	switch v {
	case e.from:
		return e.to, nil
	case e.to:
		return e.from, nil
	}

	return nil, fmt.Errorf("edge %d—%d, vertex %v: %w", e.from.id, e.to.id, v, ErrNotEndpoint)
}

// otherUnchecked is Other for callers that already know v is an endpoint.
func (e *Edge) otherUnchecked(v *Vertex) *Vertex {
	if v == e.from {
		return e.to
	}

	return e.from
}
