// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and queries: AddVertex/HasVertex/Vertex/Vertices,
//       plus per-vertex accessors (ID, Coins, TakeCoins, Exits, Neighbors).
// Determinism:
//   - Vertices() returns vertices sorted by ID asc.
//   - Exits()/Neighbors() return entries sorted by opposite endpoint ID asc.

package core

import (
	"fmt"
	"sort"
)

// AddVertex registers a new vertex with the given ID and initial coin count.
//
// Errors:
//   - ErrDuplicateVertex: the ID is already present.
//   - ErrNegativeCoins:   coins < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64, coins int) (*Vertex, error) {
	if coins < 0 {
		return nil, fmt.Errorf("AddVertex(%d, coins=%d): %w", id, coins, ErrNegativeCoins)
	}
	if _, exists := g.vertices[id]; exists {
		return nil, fmt.Errorf("AddVertex(%d): %w", id, ErrDuplicateVertex)
	}

	v := &Vertex{
		id:         id,
		coins:      coins,
		byNeighbor: make(map[int64]*Edge),
	}
	g.vertices[id] = v
	g.sorted = nil // invalidate ordering cache

	return v, nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID or ErrVertexNotFound.
func (g *Graph) Vertex(id int64) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("vertex %d: %w", id, ErrVertexNotFound)
	}

	return v, nil
}

// Vertices returns every vertex sorted by ID ascending.
// The returned slice is shared; callers must not modify it.
//
// Complexity: O(V log V) after a mutation, O(1) otherwise.
func (g *Graph) Vertices() []*Vertex {
	if g.sorted != nil {
		return g.sorted
	}
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	g.sorted = out

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// TotalCoins sums the coins still lying on every vertex.
// Complexity: O(V).
func (g *Graph) TotalCoins() int {
	total := 0
	for _, v := range g.vertices {
		total += v.coins
	}

	return total
}

// ID returns the vertex identifier.
func (v *Vertex) ID() int64 { return v.id }

// Coins returns the number of coins currently on the vertex.
func (v *Vertex) Coins() int { return v.coins }

// TakeCoins clears the vertex's coins and returns how many were there.
// A second call returns 0.
func (v *Vertex) TakeCoins() int {
	c := v.coins
	v.coins = 0

	return c
}

// Exits returns the incident edges sorted by the opposite endpoint ID.
// The returned slice is shared; callers must not modify it.
func (v *Vertex) Exits() []*Edge { return v.exits }

// Neighbors returns adjacent vertices sorted by ID.
// Complexity: O(deg(v)).
func (v *Vertex) Neighbors() []*Vertex {
	out := make([]*Vertex, 0, len(v.exits))
	for _, e := range v.exits {
		out = append(out, e.otherUnchecked(v))
	}

	return out
}

// IsNeighbor reports whether v and w share an edge.
func (v *Vertex) IsNeighbor(w *Vertex) bool {
	if w == nil {
		return false
	}
	_, ok := v.byNeighbor[w.id]

	return ok
}

// Edge returns the edge between v and w, or ErrEdgeNotFound.
// Complexity: O(1).
func (v *Vertex) Edge(w *Vertex) (*Edge, error) {
	if w == nil {
		return nil, ErrNilVertex
	}
	e, ok := v.byNeighbor[w.id]
	if !ok {
		return nil, fmt.Errorf("%d—%d: %w", v.id, w.id, ErrEdgeNotFound)
	}

	return e, nil
}

// String renders the vertex as "v<ID>".
func (v *Vertex) String() string { return fmt.Sprintf("v%d", v.id) }

// attach inserts e into v's exit list keeping it sorted by opposite ID.
func (v *Vertex) attach(e *Edge, other *Vertex) {
	i := sort.Search(len(v.exits), func(i int) bool {
		return v.exits[i].otherUnchecked(v).id >= other.id
	})
	v.exits = append(v.exits, nil)
	copy(v.exits[i+1:], v.exits[i:])
	v.exits[i] = e
	v.byNeighbor[other.id] = e
}
