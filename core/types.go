// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph declarations, sentinel errors and NewGraph.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called twice with the same ID.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrNegativeCoins indicates a vertex was created with a negative coin count.
	ErrNegativeCoins = errors.New("core: negative coin count")

	// ErrEdgeNotFound indicates two vertices share no edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightTooLarge indicates an edge weight above MaxWeight.
	ErrWeightTooLarge = errors.New("core: edge weight too large")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNotEndpoint indicates Edge.Other was called with a vertex that is
	// not one of the edge's endpoints.
	ErrNotEndpoint = errors.New("core: vertex is not an endpoint of edge")

	// ErrNilVertex indicates a nil *Vertex was passed where one is required.
	ErrNilVertex = errors.New("core: vertex is nil")
)

// MaxWeight bounds a single edge weight. Path costs over up to 2^21 edges
// stay below 2^53 and are therefore exact as float64 heap priorities.
const MaxWeight int64 = 1 << 32

// Vertex is a sewer junction.
//
// id is stable for the lifetime of the graph. coins is the only field that
// changes after construction and it changes at most once (TakeCoins).
type Vertex struct {
	id    int64
	coins int

	// exits are kept sorted by the opposite endpoint ID.
	exits []*Edge
	// byNeighbor maps opposite endpoint ID → edge for O(1) Edge lookups.
	byNeighbor map[int64]*Edge
}

// Edge is an immutable undirected connection between two vertices.
type Edge struct {
	from   *Vertex
	to     *Vertex
	weight int64
}

// Graph owns the vertex catalog and the edge list.
type Graph struct {
	vertices map[int64]*Vertex
	edges    []*Edge

	// sorted caches Vertices(); reset by AddVertex.
	sorted []*Vertex
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[int64]*Vertex),
	}
}
