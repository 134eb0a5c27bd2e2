package sim_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdiver/sim"
)

func newTinyGame(t *testing.T, budget int64) *sim.Game {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	gm, err := sim.NewGame(tiny(t), budget, l)
	require.NoError(t, err)

	return gm
}

func TestGame_SeekView(t *testing.T) {
	gm := newTinyGame(t, 10)
	s := gm.Seeker()

	assert.Equal(t, int64(1), s.CurrentLocation())
	assert.Equal(t, 1, s.DistanceToRing())
	nbs := s.Neighbors()
	require.Len(t, nbs, 2)
	assert.Equal(t, int64(2), nbs[0].ID)
	assert.Equal(t, 1, nbs[0].DistanceToRing)
	assert.Equal(t, 0, nbs[1].DistanceToRing)

	assert.ErrorIs(t, s.MoveTo(4), sim.ErrNotAdjacent)
	assert.ErrorIs(t, s.MoveTo(99), sim.ErrNotAdjacent)

	require.NoError(t, s.MoveTo(3))
	assert.Equal(t, 0, s.DistanceToRing())
	assert.Zero(t, gm.Coins(), "seek does not pick up coins")
}

func TestGame_ScramView(t *testing.T) {
	gm := newTinyGame(t, 3)
	s := gm.Scrammer()
	g := gm.Graph()
	v2, _ := g.Vertex(2)
	v3, _ := g.Vertex(3)
	v4, _ := g.Vertex(4)

	assert.Equal(t, int64(1), s.Exit().ID())
	assert.Len(t, s.AllNodes(), 4)

	assert.ErrorIs(t, s.MoveTo(v4), sim.ErrNotAdjacent)

	require.NoError(t, s.MoveTo(v2))
	assert.Equal(t, int64(1), s.StepsToGo())
	assert.Equal(t, 3, gm.Coins())
	assert.Zero(t, v2.Coins())

	assert.ErrorIs(t, s.MoveTo(v3), sim.ErrOutOfSteps)
	assert.Same(t, v2, gm.Position(), "a refused move leaves the diver in place")
	assert.Equal(t, int64(1), s.StepsToGo())
}

// 0 ─ 1   2
// │       │
// 3 ─ 4 ─ 5
const hookYAML = `
name: hook
vertices: [{id: 0}, {id: 1}, {id: 2}, {id: 3}, {id: 4}, {id: 5}]
edges:
  - {a: 0, b: 1, weight: 1}
  - {a: 0, b: 3, weight: 1}
  - {a: 3, b: 4, weight: 1}
  - {a: 4, b: 5, weight: 1}
  - {a: 2, b: 5, weight: 1}
entrance: 0
ring: 2
exit: 0
budget: 10
`

func TestGame_GridHintMisleads(t *testing.T) {
	sc, err := sim.ParseScenario([]byte(hookYAML))
	require.NoError(t, err)

	// Hop distances lead straight round the hook.
	rep, err := sim.Run(sc)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.SeekSteps)

	// Manhattan distances pull the diver into the dead end at 1 first.
	sc.Grid = &sim.Grid{Rows: 2, Cols: 3}
	require.NoError(t, sc.Validate())
	gm, err := sim.NewGame(sc, 10, logrus.New())
	require.NoError(t, err)
	s := gm.Seeker()
	assert.Equal(t, 2, s.DistanceToRing())
	nbs := s.Neighbors()
	require.Len(t, nbs, 2)
	assert.Equal(t, 1, nbs[0].DistanceToRing)
	assert.Equal(t, 3, nbs[1].DistanceToRing)

	rep, err = sim.Run(sc)
	require.NoError(t, err)
	assert.Equal(t, 6, rep.SeekSteps)
	assert.True(t, rep.Escaped)
}

func TestGrid_Manhattan(t *testing.T) {
	gr := &sim.Grid{Rows: 3, Cols: 4}
	assert.Equal(t, 0, gr.Manhattan(5, 5))
	assert.Equal(t, 5, gr.Manhattan(0, 11))
	assert.Equal(t, 2, gr.Manhattan(3, 6))
	assert.Equal(t, 2, gr.Manhattan(6, 3))
}
