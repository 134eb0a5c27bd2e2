// SPDX-License-Identifier: MIT

package sim

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcdiver/builder"
	"github.com/katalvlaran/mcdiver/core"
	"github.com/katalvlaran/mcdiver/dfs"
	"github.com/katalvlaran/mcdiver/dijkstra"
)

// DefaultBudgetFactor scales cost(ring → exit) when a scenario has no
// explicit budget.
const DefaultBudgetFactor = 2.0

// ErrInvalidScenario indicates a scenario that cannot be played.
var ErrInvalidScenario = errors.New("sim: invalid scenario")

// VertexSpec is one chamber.
type VertexSpec struct {
	ID    int64 `yaml:"id"`
	Coins int   `yaml:"coins,omitempty"`
}

// EdgeSpec is one pipe.
type EdgeSpec struct {
	A      int64 `yaml:"a"`
	B      int64 `yaml:"b"`
	Weight int64 `yaml:"weight"`
}

// Grid places vertex r*Cols + c at row r, column c.
type Grid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Manhattan returns |Δrow| + |Δcol| between the cells of a and b.
func (gr *Grid) Manhattan(a, b int64) int {
	cols := int64(gr.Cols)
	dr, dc := a/cols-b/cols, a%cols-b%cols
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return int(dr + dc)
}

// Scenario is the on-disk description of one game.
type Scenario struct {
	Name     string       `yaml:"name,omitempty"`
	Vertices []VertexSpec `yaml:"vertices"`
	Edges    []EdgeSpec   `yaml:"edges"`
	Entrance int64        `yaml:"entrance"`
	Ring     int64        `yaml:"ring"`
	Exit     int64        `yaml:"exit"`

	// Grid, when set, gives every vertex a cell and the seek hint becomes
	// the Manhattan distance to the ring. Without it the hint is the exact
	// hop distance.
	Grid *Grid `yaml:"grid,omitempty"`

	// Budget is the scram step budget. 0 means BudgetFactor × cost(ring → exit).
	Budget int64 `yaml:"budget,omitempty"`
	// BudgetFactor defaults to DefaultBudgetFactor when 0.
	BudgetFactor float64 `yaml:"budget_factor,omitempty"`
}

// LoadScenario reads and validates the YAML scenario at path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sim: read scenario: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// ParseScenario decodes and validates a YAML scenario. Unknown keys are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Marshal encodes the scenario as YAML.
func (sc *Scenario) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return nil, fmt.Errorf("sim: encode scenario: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("sim: encode scenario: %w", err)
	}

	return buf.Bytes(), nil
}

// Save writes the scenario to path.
func (sc *Scenario) Save(path string) error {
	data, err := sc.Marshal()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("sim: write scenario: %w", err)
	}

	return nil
}

// Validate checks that the scenario builds a connected graph, that the
// landmarks exist and that the budget settings are usable.
func (sc *Scenario) Validate() error {
	if len(sc.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidScenario)
	}
	if sc.Budget < 0 {
		return fmt.Errorf("%w: negative budget %d", ErrInvalidScenario, sc.Budget)
	}
	if sc.BudgetFactor < 0 || math.IsNaN(sc.BudgetFactor) || math.IsInf(sc.BudgetFactor, 0) {
		return fmt.Errorf("%w: budget_factor %g", ErrInvalidScenario, sc.BudgetFactor)
	}

	if gr := sc.Grid; gr != nil {
		if gr.Rows < 1 || gr.Cols < 1 {
			return fmt.Errorf("%w: grid %dx%d", ErrInvalidScenario, gr.Rows, gr.Cols)
		}
		cells := int64(gr.Rows) * int64(gr.Cols)
		for _, v := range sc.Vertices {
			if v.ID < 0 || v.ID >= cells {
				return fmt.Errorf("%w: vertex %d is off the %dx%d grid", ErrInvalidScenario, v.ID, gr.Rows, gr.Cols)
			}
		}
	}

	g, err := sc.Graph()
	if err != nil {
		return err
	}
	landmarks := []struct {
		name string
		id   int64
	}{{"entrance", sc.Entrance}, {"ring", sc.Ring}, {"exit", sc.Exit}}
	for _, lm := range landmarks {
		if !g.HasVertex(lm.id) {
			return fmt.Errorf("%w: %s %d is not a vertex", ErrInvalidScenario, lm.name, lm.id)
		}
	}
	ok, err := dfs.Connected(g)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if !ok {
		return fmt.Errorf("%w: graph is not connected", ErrInvalidScenario)
	}

	return nil
}

// Graph builds a fresh core graph. Every call returns an independent copy,
// so coins taken in one game do not leak into the next.
func (sc *Scenario) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, v := range sc.Vertices {
		if _, err := g.AddVertex(v.ID, v.Coins); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}
	for _, e := range sc.Edges {
		if _, err := g.AddEdge(e.A, e.B, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}

	return g, nil
}

// ResolveBudget returns the scram budget for g, applying the factor rule
// when Budget is 0. The result is rounded up.
func (sc *Scenario) ResolveBudget(g *core.Graph) (int64, error) {
	if sc.Budget > 0 {
		return sc.Budget, nil
	}
	ring, err := g.Vertex(sc.Ring)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	exit, err := g.Vertex(sc.Exit)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	path, err := dijkstra.ShortestPath(ring, exit)
	if err != nil {
		return 0, fmt.Errorf("sim: budget: %w", err)
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: exit unreachable from ring", ErrInvalidScenario)
	}
	cost, err := dijkstra.PathCost(path)
	if err != nil {
		return 0, fmt.Errorf("sim: budget: %w", err)
	}
	factor := sc.BudgetFactor
	if factor == 0 {
		factor = DefaultBudgetFactor
	}

	b := math.Ceil(float64(cost) * factor)
	if b >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: budget %g × %d does not fit in int64", ErrInvalidScenario, factor, cost)
	}

	return int64(b), nil
}

// FromLayout converts a generated layout into a scenario whose budget is
// budgetFactor × cost(ring → exit). The layout's grid is kept, so seek
// hints are Manhattan distances.
func FromLayout(l *builder.Layout, budgetFactor float64) *Scenario {
	sc := &Scenario{
		Name:         fmt.Sprintf("sewer-%dx%d", l.Rows, l.Cols),
		Entrance:     l.Entrance,
		Ring:         l.Ring,
		Exit:         l.Exit,
		Grid:         &Grid{Rows: l.Rows, Cols: l.Cols},
		BudgetFactor: budgetFactor,
	}
	for _, v := range l.Graph.Vertices() {
		sc.Vertices = append(sc.Vertices, VertexSpec{ID: v.ID(), Coins: v.Coins()})
	}
	for _, e := range l.Graph.Edges() {
		sc.Edges = append(sc.Edges, EdgeSpec{A: e.From().ID(), B: e.To().ID(), Weight: e.Weight()})
	}

	return sc
}

// Generate builds a rows×cols sewer from seed and converts it with
// DefaultBudgetFactor. Extra builder options are applied after the seed.
func Generate(seed int64, rows, cols int, opts ...builder.Option) (*Scenario, error) {
	l, err := builder.Sewer(rows, cols, append([]builder.Option{builder.WithSeed(seed)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("sim: generate: %w", err)
	}
	sc := FromLayout(l, DefaultBudgetFactor)
	sc.Name = fmt.Sprintf("%s-seed%d", sc.Name, seed)

	return sc, nil
}
