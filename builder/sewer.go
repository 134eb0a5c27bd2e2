// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mcdiver/bfs"
	"github.com/katalvlaran/mcdiver/core"
)

const (
	methodSewer = "Sewer"
	minChambers = 2
)

// Layout is a generated sewer together with its landmarks.
type Layout struct {
	Graph      *core.Graph
	Rows, Cols int
	// Entrance is chamber (0, 0).
	Entrance int64
	// Ring is the chamber farthest from the entrance in hops; ties go to
	// the lowest ID.
	Ring int64
	// Exit is where the diver must end; it equals Entrance.
	Exit int64
}

// pipe is a candidate grid adjacency with its drawn weight. rank breaks
// weight ties at random so that equal weights still give a random tree.
type pipe struct {
	a, b   int64 // a < b
	weight int64
	rank   int64
}

// Sewer generates a rows×cols layout.
//
// Steps:
//  1. Add chambers in row-major order, coins from the CoinFn.
//  2. Draw a weight and a tie-break rank for every grid pipe, row-major
//     (right, then down).
//  3. Carve the minimum spanning tree of those pipes (randomized Kruskal).
//  4. Add each remaining pipe, still row-major, with the loop probability.
//  5. Place the ring by BFS from the entrance.
//
// Errors: ErrTooFewVertices (rows or cols < 1, or fewer than two chambers),
// ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
// Complexity: O(n log n) time and O(n) memory for n = rows*cols.
func Sewer(rows, cols int, opts ...Option) (*Layout, error) {
	if rows < 1 || cols < 1 || rows*cols < minChambers {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (need ≥ %d chambers): %w",
			methodSewer, rows, cols, minChambers, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodSewer, cfg.err)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodSewer, ErrNeedRandSource)
	}

	s := &sewer{rows: rows, cols: cols, cfg: cfg, g: core.NewGraph()}

	// 1) chambers
	for id := int64(0); id < int64(rows*cols); id++ {
		if _, err := s.g.AddVertex(id, cfg.coinFn(cfg.rng, id)); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%d): %w: %w", methodSewer, id, ErrConstructFailed, err)
		}
	}

	// 2) candidate pipes
	pipes := s.candidates()

	// 3) spanning tree
	rest, err := s.carve(pipes)
	if err != nil {
		return nil, err
	}

	// 4) loops
	if err = s.loops(rest); err != nil {
		return nil, err
	}

	// 5) landmarks
	ring, err := s.farthestFrom(0)
	if err != nil {
		return nil, err
	}

	return &Layout{Graph: s.g, Rows: rows, Cols: cols, Entrance: 0, Ring: ring, Exit: 0}, nil
}

// sewer holds generation state.
type sewer struct {
	rows, cols int
	cfg        builderConfig
	g          *core.Graph
}

// candidates lists every grid pipe in row-major order, right then down,
// drawing its weight and rank as it goes.
func (s *sewer) candidates() []pipe {
	cols, n := int64(s.cols), int64(s.rows*s.cols)
	out := make([]pipe, 0, 2*n)
	for id := int64(0); id < n; id++ {
		if (id+1)%cols != 0 {
			out = append(out, s.drawPipe(id, id+1))
		}
		if id+cols < n {
			out = append(out, s.drawPipe(id, id+cols))
		}
	}

	return out
}

func (s *sewer) drawPipe(a, b int64) pipe {
	w := s.cfg.weightFn(s.cfg.rng)

	return pipe{a: a, b: b, weight: w, rank: s.cfg.rng.Int63()}
}

func (s *sewer) addPipe(p pipe) error {
	if _, err := s.g.AddEdge(p.a, p.b, p.weight); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w: %w", methodSewer, p.a, p.b, p.weight, ErrConstructFailed, err)
	}

	return nil
}

// carve adds the minimum spanning tree of pipes, ordered by (weight, rank),
// using a disjoint-set forest with path compression and union by rank.
// It returns the pipes left out, in their original order.
func (s *sewer) carve(pipes []pipe) ([]pipe, error) {
	order := make([]int, len(pipes))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		p, q := pipes[order[i]], pipes[order[j]]
		if p.weight != q.weight {
			return p.weight < q.weight
		}
		if p.rank != q.rank {
			return p.rank < q.rank
		}

		return order[i] < order[j]
	})

	n := s.rows * s.cols
	parent := make([]int64, n)
	height := make([]int, n)
	for i := range parent {
		parent[i] = int64(i)
	}
	find := func(u int64) int64 {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	inTree := make([]bool, len(pipes))
	joined := 0
	for _, i := range order {
		ru, rv := find(pipes[i].a), find(pipes[i].b)
		if ru == rv {
			continue
		}
		if height[ru] < height[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if height[ru] == height[rv] {
			height[ru]++
		}

		if err := s.addPipe(pipes[i]); err != nil {
			return nil, err
		}
		inTree[i] = true
		if joined++; joined == n-1 {
			break
		}
	}

	rest := make([]pipe, 0, len(pipes)-joined)
	for i, p := range pipes {
		if !inTree[i] {
			rest = append(rest, p)
		}
	}

	return rest, nil
}

// loops adds each left-out pipe with probability cfg.loopProb.
func (s *sewer) loops(rest []pipe) error {
	if s.cfg.loopProb == 0 {
		return nil
	}
	for _, p := range rest {
		if s.cfg.rng.Float64() >= s.cfg.loopProb {
			continue
		}
		if err := s.addPipe(p); err != nil {
			return err
		}
	}

	return nil
}

// farthestFrom returns the chamber with the largest hop distance from id.
func (s *sewer) farthestFrom(id int64) (int64, error) {
	res, err := bfs.BFS(s.g, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodSewer, err)
	}
	best, bestDepth := id, 0
	for _, v := range s.g.Vertices() {
		if d, ok := res.Depth[v.ID()]; ok && d > bestDepth {
			best, bestDepth = v.ID(), d
		}
	}

	return best, nil
}
