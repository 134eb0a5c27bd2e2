// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, plus the connectivity and cycle checks built on it.
//
// Neighbors are explored in ascending ID order, so every result is
// deterministic.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks.
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)       allows cancellation via context.Context.
//   - WithOnVisit(fn)        pre-order hook; error aborts traversal.
//   - WithOnExit(fn)         post-order hook; error aborts traversal.
//   - WithMaxDepth(limit)    stops recursion beyond the given depth (>=0).
//   - WithFullTraversal()    restarts from every unvisited vertex.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mcdiver/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	opts Options
	res  *Result
}

// DFS performs depth-first search on g from startID, or over every
// component when WithFullTraversal is set (startID is then ignored).
// On abort the partial Result is returned together with the error.
func DFS(g *core.Graph, startID int64, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	var start *core.Vertex
	if !dopts.FullTraversal {
		var err error
		if start, err = g.Vertex(startID); err != nil {
			return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
		}
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &Result{
		PreOrder: make([]int64, 0, n),
		Order:    make([]int64, 0, n),
		Depth:    make(map[int64]int, n),
		Parent:   make(map[int64]int64, n),
		Visited:  make(map[int64]bool, n),
	}
	w := &dfsWalker{opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if !dopts.FullTraversal {
		return res, w.traverse(start, 0)
	}
	for _, v := range g.Vertices() {
		if res.Visited[v.ID()] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits v at the given depth and recurses into its neighbors.
func (w *dfsWalker) traverse(v *core.Vertex, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	id := v.ID()
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	// 5. Recurse on unvisited neighbors
	for _, nb := range v.Neighbors() {
		if w.res.Visited[nb.ID()] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			break
		}
		w.res.Parent[nb.ID()] = id
		if err := w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
