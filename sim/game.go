// SPDX-License-Identifier: MIT

package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcdiver/bfs"
	"github.com/katalvlaran/mcdiver/core"
	"github.com/katalvlaran/mcdiver/diver"
)

var (
	// ErrNotAdjacent indicates a move to a vertex that shares no edge with
	// the current one.
	ErrNotAdjacent = errors.New("sim: not adjacent")

	// ErrOutOfSteps indicates a scram move costing more than the remaining budget.
	ErrOutOfSteps = errors.New("sim: out of steps")
)

// Game is the state of one dive.
type Game struct {
	g     *core.Graph
	cur   *core.Vertex
	ring  *core.Vertex
	exit  *core.Vertex
	hint  func(id int64) int
	steps int64
	coins int

	seekSteps  int
	scramMoves int

	log logrus.FieldLogger
}

// NewGame places the diver on the entrance of a freshly built graph.
func NewGame(sc *Scenario, budget int64, log logrus.FieldLogger) (*Game, error) {
	g, err := sc.Graph()
	if err != nil {
		return nil, err
	}
	entrance, err := g.Vertex(sc.Entrance)
	if err != nil {
		return nil, fmt.Errorf("%w: entrance: %w", ErrInvalidScenario, err)
	}
	ring, err := g.Vertex(sc.Ring)
	if err != nil {
		return nil, fmt.Errorf("%w: ring: %w", ErrInvalidScenario, err)
	}
	exit, err := g.Vertex(sc.Exit)
	if err != nil {
		return nil, fmt.Errorf("%w: exit: %w", ErrInvalidScenario, err)
	}
	hint, err := seekHint(sc, g, ring)
	if err != nil {
		return nil, err
	}

	return &Game{
		g:     g,
		cur:   entrance,
		ring:  ring,
		exit:  exit,
		hint:  hint,
		steps: budget,
		log:   log,
	}, nil
}

// Graph returns the graph the game is played on.
func (gm *Game) Graph() *core.Graph { return gm.g }

// Position returns the vertex the diver stands on.
func (gm *Game) Position() *core.Vertex { return gm.cur }

// Coins returns the coins picked up so far.
func (gm *Game) Coins() int { return gm.coins }

// Seeker returns the view handed to diver.Seek.
func (gm *Game) Seeker() diver.SeekState { return seekView{gm} }

// Scrammer returns the view handed to diver.Scram.
func (gm *Game) Scrammer() diver.ScramState { return scramView{gm} }

// seekHint returns the Manhattan distance to the ring when sc has a grid,
// and the hop distance otherwise. Vertices the ring cannot reach by hops
// report |V|, beyond every reachable one.
func seekHint(sc *Scenario, g *core.Graph, ring *core.Vertex) (func(int64) int, error) {
	if gr := sc.Grid; gr != nil {
		return func(id int64) int { return gr.Manhattan(id, ring.ID()) }, nil
	}
	res, err := bfs.BFS(g, ring.ID())
	if err != nil {
		return nil, fmt.Errorf("sim: ring distances: %w", err)
	}
	far := g.VertexCount()

	return func(id int64) int {
		if d, ok := res.Depth[id]; ok {
			return d
		}

		return far
	}, nil
}

// step moves to v, which must be adjacent, and returns the edge used.
func (gm *Game) step(v *core.Vertex) (*core.Edge, error) {
	e, err := gm.cur.Edge(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v→%v", ErrNotAdjacent, gm.cur, v)
	}

	return e, nil
}

type seekView struct{ gm *Game }

func (s seekView) CurrentLocation() int64 { return s.gm.cur.ID() }

func (s seekView) DistanceToRing() int { return s.gm.hint(s.gm.cur.ID()) }

func (s seekView) Neighbors() []diver.NodeStatus {
	nbs := s.gm.cur.Neighbors()
	out := make([]diver.NodeStatus, 0, len(nbs))
	for _, w := range nbs {
		out = append(out, diver.NodeStatus{ID: w.ID(), DistanceToRing: s.gm.hint(w.ID())})
	}

	return out
}

func (s seekView) MoveTo(id int64) error {
	v, err := s.gm.g.Vertex(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotAdjacent, err)
	}
	if _, err = s.gm.step(v); err != nil {
		return err
	}
	s.gm.cur = v
	s.gm.seekSteps++

	return nil
}

type scramView struct{ gm *Game }

func (s scramView) CurrentNode() *core.Vertex { return s.gm.cur }
func (s scramView) Exit() *core.Vertex        { return s.gm.exit }
func (s scramView) AllNodes() []*core.Vertex  { return s.gm.g.Vertices() }
func (s scramView) StepsToGo() int64          { return s.gm.steps }

func (s scramView) MoveTo(v *core.Vertex) error {
	e, err := s.gm.step(v)
	if err != nil {
		return err
	}
	if e.Weight() > s.gm.steps {
		return fmt.Errorf("%w: %v→%v costs %d, %d left", ErrOutOfSteps, s.gm.cur, v, e.Weight(), s.gm.steps)
	}
	s.gm.steps -= e.Weight()
	s.gm.cur = v
	s.gm.scramMoves++
	if got := v.TakeCoins(); got > 0 {
		s.gm.coins += got
		s.gm.log.WithFields(logrus.Fields{"vertex": v.ID(), "coins": got, "total": s.gm.coins}).Debug("picked up coins")
	}

	return nil
}
