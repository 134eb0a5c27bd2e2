// SPDX-License-Identifier: MIT
package diver_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdiver/core"
	"github.com/katalvlaran/mcdiver/dijkstra"
	"github.com/katalvlaran/mcdiver/diver"
)

func recordDecisions(out *[]diver.Decision) diver.Option {
	return diver.WithOnDecision(func(d diver.Decision) { *out = append(*out, d) })
}

func TestScram_AlreadyOnExit(t *testing.T) {
	g := buildGraph(t, map[int64]int{1: 0, 2: 9}, [][3]int64{{1, 2, 1}})
	s := newFakeScram(t, g, 1, 1, 50)

	require.NoError(t, diver.Scram(s))
	assert.Empty(t, s.moves)
	assert.Equal(t, int64(50), s.steps)

	// idempotent
	require.NoError(t, diver.Scram(s))
	assert.Empty(t, s.moves)
}

func TestScram_BudgetEqualsExitCostGoesStraightOut(t *testing.T) {
	// 1 ──3── 2(exit)
	// │
	// 1
	// │
	// 3 (100 coins)
	g := buildGraph(t, map[int64]int{1: 0, 2: 0, 3: 100}, [][3]int64{{1, 2, 3}, {1, 3, 1}})
	s := newFakeScram(t, g, 1, 2, 3)

	var ds []diver.Decision
	require.NoError(t, diver.Scram(s, recordDecisions(&ds)))

	assert.Equal(t, []int64{2}, s.moves)
	assert.Zero(t, s.steps)
	assert.Zero(t, s.collected)
	assert.Equal(t, 100, mustVertex(t, g, 3).Coins(), "detour must not be attempted")
	for _, d := range ds {
		assert.Equal(t, diver.PhaseExit, d.Phase)
	}
}

func TestScram_OneAffordableDetour(t *testing.T) {
	// 3(5 coins) ──1── 1(start) ──2── 2(exit) ──10── 4(1 coin)
	g := buildGraph(t,
		map[int64]int{1: 0, 2: 0, 3: 5, 4: 1},
		[][3]int64{{1, 2, 2}, {1, 3, 1}, {2, 4, 10}},
	)
	s := newFakeScram(t, g, 1, 2, 5)

	var ds []diver.Decision
	require.NoError(t, diver.Scram(s, recordDecisions(&ds)))

	assert.Equal(t, []int64{3, 1, 2}, s.moves)
	assert.Equal(t, 5, s.collected)
	assert.Equal(t, int64(1), s.steps)
	assert.Same(t, s.exit, s.cur)

	require.Len(t, ds, 3)
	assert.Equal(t, diver.PhaseCommit, ds[0].Phase)
	assert.Equal(t, int64(3), ds[0].Dest.ID())
	assert.InDelta(t, 0.2, ds[0].Ratio, 1e-9)
	// vertex 4 is the only coin left and too far: guarded single steps
	assert.Equal(t, diver.PhasePartial, ds[1].Phase)
	assert.Equal(t, int64(4), ds[1].Dest.ID())
	assert.Equal(t, diver.PhasePartial, ds[2].Phase)
	for _, d := range ds {
		assert.GreaterOrEqual(t, d.Budget, int64(0))
	}
}

func TestScram_OneShortOfDetourSkipsIt(t *testing.T) {
	// Same layout with budget 4: 4-1 > 3 fails, and the partial step to 3
	// needs 4 > 1+3, which also fails.
	g := buildGraph(t,
		map[int64]int{1: 0, 2: 0, 3: 5},
		[][3]int64{{1, 2, 2}, {1, 3, 1}},
	)
	s := newFakeScram(t, g, 1, 2, 4)

	require.NoError(t, diver.Scram(s))
	assert.Equal(t, []int64{2}, s.moves)
	assert.Zero(t, s.collected)
	assert.Equal(t, int64(2), s.steps)
}

func TestScram_TieGoesToLowestID(t *testing.T) {
	//     2(1)
	//    /    \
	//   1      4(exit)
	//    \    /
	//     3(1)
	g := buildGraph(t,
		map[int64]int{1: 0, 2: 1, 3: 1, 4: 0},
		[][3]int64{{1, 3, 1}, {1, 2, 1}, {2, 4, 1}, {3, 4, 1}},
	)
	s := newFakeScram(t, g, 1, 4, 100)

	var ds []diver.Decision
	require.NoError(t, diver.Scram(s, recordDecisions(&ds)))

	require.NotEmpty(t, ds)
	assert.Equal(t, int64(2), ds[0].Dest.ID())
	assert.Equal(t, int64(2), s.moves[0])
}

func TestScram_PrefersRewardDensity(t *testing.T) {
	// 2 holds 1 coin one step away (ratio 1); 3 holds 10 coins two steps away (ratio 0.2).
	g := buildGraph(t,
		map[int64]int{1: 0, 2: 1, 3: 10, 5: 0},
		[][3]int64{{1, 2, 1}, {1, 3, 2}, {1, 5, 1}},
	)
	s := newFakeScram(t, g, 1, 5, 100)

	var ds []diver.Decision
	require.NoError(t, diver.Scram(s, recordDecisions(&ds)))
	assert.Equal(t, int64(3), ds[0].Dest.ID())
	assert.Equal(t, 11, s.collected)
	assert.Same(t, s.exit, s.cur)
}

func TestScram_NoCoinsGoesStraightOut(t *testing.T) {
	g := buildGraph(t, map[int64]int{1: 0, 2: 0, 3: 0}, [][3]int64{{1, 2, 1}, {2, 3, 1}})
	s := newFakeScram(t, g, 1, 3, 10)

	require.NoError(t, diver.Scram(s))
	assert.Equal(t, []int64{2, 3}, s.moves)
	assert.Equal(t, int64(8), s.steps)
}

func TestScram_StopsWhenPassingTheExit(t *testing.T) {
	// The only coin sits behind the exit; arriving on the exit ends the dive.
	g := buildGraph(t, map[int64]int{1: 0, 2: 0, 3: 4}, [][3]int64{{1, 2, 1}, {2, 3, 1}})
	s := newFakeScram(t, g, 1, 2, 100)

	require.NoError(t, diver.Scram(s))
	assert.Equal(t, []int64{2}, s.moves)
	assert.Equal(t, 4, mustVertex(t, g, 3).Coins())
}

func TestScram_ExitWalkOverZeroWeightPipes(t *testing.T) {
	// 1(exit) ─0─ 2 ─0─ 3 ─0─ 4 ─0─ 1: both ways round cost nothing.
	g := buildGraph(t,
		map[int64]int{1: 0, 2: 0, 3: 0, 4: 0},
		[][3]int64{{1, 2, 0}, {2, 3, 0}, {3, 4, 0}, {4, 1, 0}},
	)
	s := newFakeScram(t, g, 3, 1, 0)
	s.maxMoves = 10

	var ds []diver.Decision
	require.NoError(t, diver.Scram(s, recordDecisions(&ds)))
	assert.Len(t, s.moves, 2)
	assert.Same(t, s.exit, s.cur)
	for _, d := range ds {
		assert.Equal(t, diver.PhaseExit, d.Phase)
	}
}

func TestScram_CollectsOverFreePipes(t *testing.T) {
	// Complete graph of zero-weight pipes: every coin is free to take.
	coins := map[int64]int{1: 0, 2: 4, 3: 1, 4: 2, 5: 3}
	var edges [][3]int64
	for a := int64(1); a <= 5; a++ {
		for b := a + 1; b <= 5; b++ {
			edges = append(edges, [3]int64{a, b, 0})
		}
	}
	g := buildGraph(t, coins, edges)
	s := newFakeScram(t, g, 2, 1, 1)
	s.maxMoves = 50

	require.NoError(t, diver.Scram(s))
	assert.Equal(t, 10, s.collected)
	assert.Zero(t, g.TotalCoins())
	assert.Equal(t, int64(1), s.steps)
	assert.Same(t, s.exit, s.cur)
}

// randomSewer builds a connected graph on n vertices with weights 0..2 and
// coins 0..2: a random spanning tree plus a few extra pipes.
func randomSewer(t *testing.T, r *rand.Rand, n int) *core.Graph {
	t.Helper()
	coins := make(map[int64]int, n)
	for id := int64(1); id <= int64(n); id++ {
		coins[id] = r.Intn(3)
	}
	seen := map[[2]int64]bool{}
	var edges [][3]int64
	add := func(a, b int64) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		if seen[[2]int64{a, b}] {
			return
		}
		seen[[2]int64{a, b}] = true
		edges = append(edges, [3]int64{a, b, r.Int63n(3)})
	}
	for i := 2; i <= n; i++ {
		add(int64(i), int64(1+r.Intn(i-1)))
	}
	for k := r.Intn(2 * n); k > 0; k-- {
		add(int64(1+r.Intn(n)), int64(1+r.Intn(n)))
	}

	return buildGraph(t, coins, edges)
}

func TestScram_AlwaysEndsWithZeroWeightTies(t *testing.T) {
	rounds := 20000
	if testing.Short() {
		rounds = 2000
	}
	r := rand.New(rand.NewSource(9114))
	for round := 0; round < rounds; round++ {
		n := 3 + r.Intn(5)
		g := randomSewer(t, r, n)
		start := mustVertex(t, g, int64(1+r.Intn(n)))
		exit := mustVertex(t, g, int64(1+r.Intn(n)))

		tree, err := dijkstra.Tree(exit)
		require.NoError(t, err)
		cost, ok := tree.Dist(start)
		require.True(t, ok)

		s := &fakeScram{g: g, cur: start, exit: exit, steps: cost + r.Int63n(12), maxMoves: 1000}
		require.NoError(t, diver.Scram(s), "round %d", round)
		require.Same(t, exit, s.cur, "round %d", round)
		require.GreaterOrEqual(t, s.steps, int64(0), "round %d", round)
	}
}

func TestScram_Errors(t *testing.T) {
	t.Run("nil state", func(t *testing.T) {
		assert.ErrorIs(t, diver.Scram(nil), diver.ErrNilState)
	})

	t.Run("exit unreachable", func(t *testing.T) {
		g := buildGraph(t, map[int64]int{1: 0, 2: 0, 3: 0}, [][3]int64{{1, 3, 1}})
		s := newFakeScram(t, g, 1, 2, 10)
		assert.ErrorIs(t, diver.Scram(s), diver.ErrNoRoute)
		assert.Empty(t, s.moves)
	})

	t.Run("budget below way out", func(t *testing.T) {
		g := buildGraph(t, map[int64]int{1: 0, 2: 0}, [][3]int64{{1, 2, 5}})
		s := newFakeScram(t, g, 1, 2, 4)
		assert.ErrorIs(t, diver.Scram(s), diver.ErrInsufficientBudget)
		assert.Empty(t, s.moves)
	})

	t.Run("move failure", func(t *testing.T) {
		boom := errors.New("boom")
		g := buildGraph(t, map[int64]int{1: 0, 2: 0}, [][3]int64{{1, 2, 1}})
		s := newFakeScram(t, g, 1, 2, 4)
		s.failMove = boom
		assert.ErrorIs(t, diver.Scram(s), boom)
	})
}

func TestScram_LogsDecisions(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{})

	g := buildGraph(t, map[int64]int{1: 0, 2: 3, 3: 0}, [][3]int64{{1, 2, 1}, {2, 3, 1}})
	s := newFakeScram(t, g, 1, 3, 10)
	require.NoError(t, diver.Scram(s, diver.WithLogger(l)))

	out := buf.String()
	assert.Contains(t, out, `"phase":"scram"`)
	assert.Contains(t, out, `"dest":2`)
	assert.Contains(t, out, "standing on the exit")
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { diver.WithLogger(nil) })
	assert.Panics(t, func() { diver.WithOnDecision(nil) })
}
