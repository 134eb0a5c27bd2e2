// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// Edge weights are ignored: Depth counts edges, not cost. The simulator
// uses it to compute the distance-to-ring hint handed to the seek phase.
//
// Determinism
//
//	core.Vertex.Neighbors returns vertices in ascending ID order and BFS
//	enqueues them in that order, so Order is reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, ringID, bfs.WithMaxDepth(8))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // context errors, or an OnVisit error
//	}
//	hops := res.Depth[id]
//
// Options
//
//   - WithContext(ctx):         cancellation, checked once per dequeue.
//   - WithMaxDepth(d):          do not enqueue beyond depth d (> 0); 0 means no limit.
//   - WithFilterNeighbor(fn):   skip edges for which fn(curr, nbr) == false.
//   - WithOnVisit(fn):          hook per visited vertex; an error aborts the search.
package bfs
