// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/mcdiver/core"
	"github.com/katalvlaran/mcdiver/heap"
)

// ShortestPath returns a minimum-cost path from src to dst.
//
// Returns:
//
//   - [src] when src == dst.
//   - src, ..., dst when dst is reachable.
//   - an empty, non-nil slice when dst is unreachable (or beyond MaxDistance).
//
// Errors: ErrNilVertex for nil input, ErrFrontierCorrupt if the heap reports
// misuse (never expected; the search is aborted rather than returning a
// possibly wrong path).
//
// Complexity: O((V + E) log V) time, O(V) space.
func ShortestPath(src, dst *core.Vertex, opts ...Option) ([]*core.Vertex, error) {
	if src == nil || dst == nil {
		return nil, ErrNilVertex
	}

	r := newRunner(src, opts)
	found, err := r.run(dst)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*core.Vertex{}, nil
	}

	return r.path(dst), nil
}

// Tree runs the search from src until every reachable vertex is settled.
func Tree(src *core.Vertex, opts ...Option) (*Result, error) {
	if src == nil {
		return nil, ErrNilVertex
	}

	r := newRunner(src, opts)
	if _, err := r.run(nil); err != nil {
		return nil, err
	}

	return &Result{r: r}, nil
}

// Result holds the settled scratch state of a Tree run.
type Result struct {
	r *runner
}

// Source returns the vertex the tree was grown from.
func (res *Result) Source() *core.Vertex { return res.r.source }

// Dist returns the shortest distance from the source to v, and false if v
// was not reached.
func (res *Result) Dist(v *core.Vertex) (int64, bool) {
	rec := res.r.lookup(v)
	if rec == nil || !rec.settled {
		return 0, false
	}

	return rec.dist, true
}

// PathTo returns the shortest path from the source to v, or an empty slice
// if v was not reached.
func (res *Result) PathTo(v *core.Vertex) []*core.Vertex {
	rec := res.r.lookup(v)
	if rec == nil || !rec.settled {
		return []*core.Vertex{}
	}

	return res.r.path(v)
}

// Prev returns the predecessor of v on its shortest path from the source.
// It reports false for the source itself and for vertices not reached.
//
// Following Prev from any reached vertex strictly shortens the remaining
// tree path, so the walk ends at the source even across zero-weight edges.
func (res *Result) Prev(v *core.Vertex) (*core.Vertex, bool) {
	rec := res.r.lookup(v)
	if rec == nil || !rec.settled || rec.prev == nil {
		return nil, false
	}

	return rec.prev, true
}

// Reached returns the number of settled vertices.
func (res *Result) Reached() int {
	n := 0
	for i := range res.r.arena {
		if res.r.arena[i].settled {
			n++
		}
	}

	return n
}

// record is the per-vertex scratch state of one search.
type record struct {
	dist    int64        // best known distance from the source
	prev    *core.Vertex // predecessor on that path; nil only for the source
	settled bool         // dist is final
}

// runner holds the mutable state of a single search. It is never reused.
type runner struct {
	options  Options
	source   *core.Vertex
	frontier *heap.Heap[*core.Vertex]
	index    map[*core.Vertex]int // vertex → slot in arena
	arena    []record
}

func newRunner(src *core.Vertex, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &runner{
		options:  cfg,
		source:   src,
		frontier: heap.NewMin[*core.Vertex](),
		index:    make(map[*core.Vertex]int),
	}
}

// lookup returns v's record or nil if v was never discovered.
func (r *runner) lookup(v *core.Vertex) *record {
	i, ok := r.index[v]
	if !ok {
		return nil
	}

	return &r.arena[i]
}

// discover records v with distance d and predecessor p and adds it to the frontier.
func (r *runner) discover(v, p *core.Vertex, d int64) error {
	r.index[v] = len(r.arena)
	r.arena = append(r.arena, record{dist: d, prev: p})
	if err := r.frontier.Insert(v, float64(d)); err != nil {
		return fmt.Errorf("%w: %w", ErrFrontierCorrupt, err)
	}

	return nil
}

// run settles vertices in order of distance. If target is non-nil it stops as
// soon as target is settled and reports whether that happened.
func (r *runner) run(target *core.Vertex) (bool, error) {
	// 1) Seed the frontier with the source at distance 0.
	if err := r.discover(r.source, nil, 0); err != nil {
		return false, err
	}

	for r.frontier.Size() > 0 {
		// 2) Settle the closest frontier vertex.
		f, err := r.frontier.ExtractRoot()
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrFrontierCorrupt, err)
		}
		rf := r.lookup(f)
		rf.settled = true
		if f == target {
			return true, nil
		}
		fDist := rf.dist

		// 3) Relax every exit of f.
		for _, e := range f.Exits() {
			w, err := e.Other(f)
			if err != nil {
				return false, fmt.Errorf("dijkstra: exits of %v: %w", f, err)
			}
			// fDist ≤ MaxDistance, so the subtraction cannot overflow.
			if e.Weight() > r.options.MaxDistance-fDist {
				continue
			}
			d := fDist + e.Weight()

			rw := r.lookup(w)
			switch {
			case rw == nil:
				if err = r.discover(w, f, d); err != nil {
					return false, err
				}
			case rw.settled:
				// final already
			case d < rw.dist:
				rw.dist = d
				rw.prev = f
				if err = r.frontier.UpdatePriority(w, float64(d)); err != nil {
					return false, fmt.Errorf("%w: %w", ErrFrontierCorrupt, err)
				}
			}
		}
	}

	return false, nil
}

// path follows predecessors from v back to the source and reverses.
// Precondition: v is settled.
func (r *runner) path(v *core.Vertex) []*core.Vertex {
	var rev []*core.Vertex
	for p := v; p != nil; p = r.lookup(p).prev {
		rev = append(rev, p)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
