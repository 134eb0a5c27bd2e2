package sim_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdiver/core"
	"github.com/katalvlaran/mcdiver/sim"
)

const tinyYAML = `
name: tiny
vertices:
  - {id: 1}
  - {id: 2, coins: 3}
  - {id: 3}
  - {id: 4, coins: 7}
edges:
  - {a: 1, b: 2, weight: 2}
  - {a: 2, b: 3, weight: 2}
  - {a: 3, b: 4, weight: 1}
  - {a: 1, b: 3, weight: 5}
entrance: 1
ring: 3
exit: 1
budget: 10
`

func tiny(t *testing.T) *sim.Scenario {
	t.Helper()
	sc, err := sim.ParseScenario([]byte(tinyYAML))
	require.NoError(t, err)

	return sc
}

func TestParseScenario(t *testing.T) {
	sc := tiny(t)
	assert.Equal(t, "tiny", sc.Name)
	assert.Len(t, sc.Vertices, 4)
	assert.Equal(t, sim.VertexSpec{ID: 4, Coins: 7}, sc.Vertices[3])
	assert.Equal(t, sim.EdgeSpec{A: 1, B: 3, Weight: 5}, sc.Edges[3])
	assert.Equal(t, int64(3), sc.Ring)
	assert.Equal(t, int64(10), sc.Budget)
}

func TestParseScenario_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":       "vertices: [",
		"unknown key":    "vertices: [{id: 1}]\nmonsters: 3\n",
		"no vertices":    "entrance: 1\n",
		"missing ring":   "vertices: [{id: 1}, {id: 2}]\nedges: [{a: 1, b: 2, weight: 1}]\nentrance: 1\nring: 9\nexit: 1\n",
		"disconnected":   "vertices: [{id: 1}, {id: 2}]\nentrance: 1\nring: 2\nexit: 1\n",
		"duplicate":      "vertices: [{id: 1}, {id: 1}]\n",
		"negative coins": "vertices: [{id: 1, coins: -2}]\n",
		"self loop":      "vertices: [{id: 1}]\nedges: [{a: 1, b: 1, weight: 1}]\n",
		"parallel pipes": "vertices: [{id: 1}, {id: 2}]\nedges: [{a: 1, b: 2, weight: 1}, {a: 2, b: 1, weight: 3}]\n",
		"bad weight":     "vertices: [{id: 1}, {id: 2}]\nedges: [{a: 1, b: 2, weight: -1}]\n",
		"huge weight":    "vertices: [{id: 1}, {id: 2}]\nedges: [{a: 1, b: 2, weight: 9223372036854775807}]\n",
		"bad budget":     "vertices: [{id: 1}]\nbudget: -4\n",
		"bad factor":     "vertices: [{id: 1}]\nbudget_factor: -1\n",
		"empty grid":     "vertices: [{id: 0}]\ngrid: {rows: 0, cols: 3}\n",
		"off the grid":   "vertices: [{id: 0}, {id: 7}]\nedges: [{a: 0, b: 7, weight: 1}]\nentrance: 0\nring: 7\nexit: 0\ngrid: {rows: 2, cols: 2}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sim.ParseScenario([]byte(doc))
			assert.ErrorIs(t, err, sim.ErrInvalidScenario)
		})
	}
}

func TestParseScenario_KeepsCoreErrors(t *testing.T) {
	_, err := sim.ParseScenario([]byte("vertices: [{id: 1}, {id: 2}]\nedges: [{a: 1, b: 2, weight: -1}]\n"))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestScenario_RoundTrip(t *testing.T) {
	sc, err := sim.Generate(17, 5, 6)
	require.NoError(t, err)

	data, err := sc.Marshal()
	require.NoError(t, err)
	back, err := sim.ParseScenario(data)
	require.NoError(t, err)
	assert.Equal(t, sc, back)
}

func TestScenario_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	sc := tiny(t)
	require.NoError(t, sc.Save(path))

	back, err := sim.LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, sc, back)

	_, err = sim.LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScenario_GraphIsFresh(t *testing.T) {
	sc := tiny(t)
	g1, err := sc.Graph()
	require.NoError(t, err)
	v, err := g1.Vertex(4)
	require.NoError(t, err)
	v.TakeCoins()

	g2, err := sc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 10, g2.TotalCoins())
}

func TestScenario_ResolveBudget(t *testing.T) {
	sc := tiny(t)
	g, err := sc.Graph()
	require.NoError(t, err)

	b, err := sc.ResolveBudget(g)
	require.NoError(t, err)
	assert.Equal(t, int64(10), b, "explicit budget wins")

	// cost(ring 3 → exit 1) = 4 via vertex 2
	sc.Budget = 0
	b, err = sc.ResolveBudget(g)
	require.NoError(t, err)
	assert.Equal(t, int64(8), b)

	sc.BudgetFactor = 1.3
	b, err = sc.ResolveBudget(g)
	require.NoError(t, err)
	assert.Equal(t, int64(6), b, "rounded up from 5.2")

	sc.BudgetFactor = 1e300
	_, err = sc.ResolveBudget(g)
	assert.ErrorIs(t, err, sim.ErrInvalidScenario)
}

func TestGenerate(t *testing.T) {
	sc, err := sim.Generate(5, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, "sewer-4x4-seed5", sc.Name)
	assert.Len(t, sc.Vertices, 16)
	assert.Equal(t, sim.DefaultBudgetFactor, sc.BudgetFactor)
	assert.Equal(t, &sim.Grid{Rows: 4, Cols: 4}, sc.Grid)
	require.NoError(t, sc.Validate())

	_, err = sim.Generate(5, 1, 1)
	assert.Error(t, err)
}
