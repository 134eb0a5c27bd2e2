// SPDX-License-Identifier: MIT
package diver_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdiver/core"
	"github.com/katalvlaran/mcdiver/diver"
)

var (
	errOutOfSteps   = errors.New("fake: out of steps")
	errTooManyMoves = errors.New("fake: move limit reached")
)

// buildGraph creates the listed vertices (id → coins) and weighted edges.
func buildGraph(t *testing.T, coins map[int64]int, edges [][3]int64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, c := range coins {
		_, err := g.AddVertex(id, c)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}

	return g
}

func mustVertex(t *testing.T, g *core.Graph, id int64) *core.Vertex {
	t.Helper()
	v, err := g.Vertex(id)
	require.NoError(t, err)

	return v
}

// fakeScram is a minimal ScramState over a core.Graph.
type fakeScram struct {
	g         *core.Graph
	cur, exit *core.Vertex
	steps     int64
	collected int
	moves     []int64
	failMove  error
	// maxMoves > 0 turns a dive that never ends into an error.
	maxMoves int
}

var _ diver.ScramState = (*fakeScram)(nil)

func newFakeScram(t *testing.T, g *core.Graph, start, exit int64, steps int64) *fakeScram {
	return &fakeScram{
		g:     g,
		cur:   mustVertex(t, g, start),
		exit:  mustVertex(t, g, exit),
		steps: steps,
	}
}

func (f *fakeScram) CurrentNode() *core.Vertex { return f.cur }
func (f *fakeScram) Exit() *core.Vertex        { return f.exit }
func (f *fakeScram) AllNodes() []*core.Vertex  { return f.g.Vertices() }
func (f *fakeScram) StepsToGo() int64          { return f.steps }

func (f *fakeScram) MoveTo(v *core.Vertex) error {
	if f.failMove != nil {
		return f.failMove
	}
	if f.maxMoves > 0 && len(f.moves) >= f.maxMoves {
		return fmt.Errorf("%w: %d moves, still on %v", errTooManyMoves, len(f.moves), f.cur)
	}
	e, err := f.cur.Edge(v)
	if err != nil {
		return err
	}
	if e.Weight() > f.steps {
		return fmt.Errorf("%w: need %d, have %d", errOutOfSteps, e.Weight(), f.steps)
	}
	f.steps -= e.Weight()
	f.cur = v
	f.collected += v.TakeCoins()
	f.moves = append(f.moves, v.ID())

	return nil
}

// fakeSeek is a SeekState over a core.Graph with precomputed ring distances.
type fakeSeek struct {
	g     *core.Graph
	cur   *core.Vertex
	hint  map[int64]int
	moves []int64
}

var _ diver.SeekState = (*fakeSeek)(nil)

func (f *fakeSeek) CurrentLocation() int64 { return f.cur.ID() }
func (f *fakeSeek) DistanceToRing() int    { return f.hint[f.cur.ID()] }

func (f *fakeSeek) Neighbors() []diver.NodeStatus {
	var out []diver.NodeStatus
	for _, w := range f.cur.Neighbors() {
		out = append(out, diver.NodeStatus{ID: w.ID(), DistanceToRing: f.hint[w.ID()]})
	}

	return out
}

func (f *fakeSeek) MoveTo(id int64) error {
	v, err := f.g.Vertex(id)
	if err != nil {
		return err
	}
	if !f.cur.IsNeighbor(v) {
		return fmt.Errorf("fake: %d is not adjacent to %d", id, f.cur.ID())
	}
	f.cur = v
	f.moves = append(f.moves, id)

	return nil
}
