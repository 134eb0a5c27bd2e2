package dfs

import (
	"sort"

	"github.com/katalvlaran/mcdiver/core"
)

// Connected reports whether every vertex of g is reachable from every
// other. The empty graph counts as connected.
func Connected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return true, nil
	}
	res, err := DFS(g, vs[0].ID())
	if err != nil {
		return false, err
	}

	return len(res.Visited) == len(vs), nil
}

// Components returns the vertex IDs of each connected component. Both the
// components and the IDs within each are in ascending order.
func Components(g *core.Graph) ([][]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var comps [][]int64
	seen := make(map[int64]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		if seen[v.ID()] {
			continue
		}
		res, err := DFS(g, v.ID())
		if err != nil {
			return nil, err
		}
		comp := append([]int64(nil), res.PreOrder...)
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		for _, id := range comp {
			seen[id] = true
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// HasCycle reports whether the undirected graph g contains a cycle.
// core forbids loops and parallel edges, so any edge back to a Gray
// vertex other than the DFS parent closes a cycle.
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	state := make(map[*core.Vertex]int, g.VertexCount())

	var visit func(v, parent *core.Vertex) bool
	visit = func(v, parent *core.Vertex) bool {
		state[v] = Gray
		for _, nb := range v.Neighbors() {
			if nb == parent {
				continue
			}
			switch state[nb] {
			case Gray:
				return true
			case White:
				if visit(nb, v) {
					return true
				}
			}
		}
		state[v] = Black

		return false
	}

	for _, v := range g.Vertices() {
		if state[v] == White && visit(v, nil) {
			return true, nil
		}
	}

	return false, nil
}
