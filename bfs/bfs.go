package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mcdiver/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int64]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or the wrapped OnVisit error. On abort the partial Result is returned.
func BFS(g *core.Graph, startID int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.Vertex(startID)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int64]bool, n),
		res: &Result{
			Order:  make([]int64, 0, n),
			Depth:  make(map[int64]int, n),
			Parent: make(map[int64]int64, n),
		},
	}
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v *core.Vertex, d int, parent *core.Vertex) {
	w.visited[v.ID()] = true
	w.res.Depth[v.ID()] = d
	if parent != nil {
		w.res.Parent[v.ID()] = parent.ID()
	}
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v.ID())
		if err := w.opts.OnVisit(item.v.ID(), item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues unseen neighbors.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range item.v.Neighbors() {
		if w.visited[nbr.ID()] {
			continue
		}
		if !w.opts.FilterNeighbor(item.v.ID(), nbr.ID()) {
			continue
		}
		w.enqueue(nbr, next, item.v)
	}
}
