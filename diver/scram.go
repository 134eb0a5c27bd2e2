// SPDX-License-Identifier: MIT

package diver

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcdiver/core"
	"github.com/katalvlaran/mcdiver/dijkstra"
)

// collector holds the state of one Scram call. Nothing in it survives a
// move: every iteration of run re-plans from the live state.
type collector struct {
	s   ScramState
	cfg Options
	log logrus.FieldLogger
}

// plan is the best coin vertex found by evaluate.
type plan struct {
	dest   *core.Vertex
	path   []*core.Vertex // current vertex first, dest last
	cost   int64
	reward int
	ratio  float64
}

// Scram walks to the exit, collecting coins while the budget allows.
//
// It returns nil once the diver stands on the exit. If it already does, no
// move is made. Errors: ErrNilState, ErrNoRoute (exit unreachable),
// ErrInsufficientBudget (budget below the cheapest way out), solver errors
// and MoveTo errors, all of which abort the dive.
func Scram(s ScramState, opts ...Option) error {
	if s == nil {
		return ErrNilState
	}
	cfg := resolve(opts)
	c := &collector{
		s:   s,
		cfg: cfg,
		log: cfg.Logger.WithField("phase", "scram"),
	}

	return c.run()
}

// snapshot identifies a point of the dive. With positive weights every move
// lowers the budget, so a snapshot can only repeat after zero-weight moves
// that picked up nothing.
type snapshot struct {
	at     int64
	budget int64
	coins  int
}

// run is the Evaluate → Commit-or-Partial loop.
func (c *collector) run() error {
	seen := make(map[snapshot]bool)
	for {
		cur, exit := c.s.CurrentNode(), c.s.Exit()
		if cur == exit {
			c.log.WithField("budget", c.s.StepsToGo()).Debug("standing on the exit")
			return nil
		}

		// 1) Evaluate: how much does getting out cost from here?
		// The graph is undirected, so one tree grown from the exit answers
		// cost(x → exit) for every x.
		toExit, err := dijkstra.Tree(exit)
		if err != nil {
			return fmt.Errorf("diver: distances to exit: %w", err)
		}
		exitCost, ok := toExit.Dist(cur)
		if !ok {
			return fmt.Errorf("%w: from %v", ErrNoRoute, cur)
		}
		budget := c.s.StepsToGo()
		if budget <= exitCost {
			return c.exitDirect(toExit)
		}

		snap := snapshot{at: cur.ID(), budget: budget, coins: coinsLeft(c.s.AllNodes())}
		if seen[snap] {
			c.log.WithField("at", cur.ID()).Debug("no progress since last visit, heading out")
			return c.exitDirect(toExit)
		}
		seen[snap] = true

		best, err := c.evaluate(cur)
		if err != nil {
			return err
		}
		if best == nil {
			c.log.Debug("no coins left")
			return c.exitDirect(toExit)
		}

		// 2) Commit if the whole trip plus the way out fits.
		destToExit, ok := toExit.Dist(best.dest)
		if !ok {
			return fmt.Errorf("%w: from %v", ErrNoRoute, best.dest)
		}
		next := best.path[1]
		if budget-best.cost > destToExit {
			if err = c.step(PhaseCommit, cur, next, best, budget); err != nil {
				return err
			}
			continue
		}

		// 3) Partial-Advance: one step only if it still leaves the way out open.
		e, err := cur.Edge(next)
		if err != nil {
			return fmt.Errorf("diver: %w: %w", dijkstra.ErrMalformedPath, err)
		}
		nextToExit, ok := toExit.Dist(next)
		if !ok {
			return fmt.Errorf("%w: from %v", ErrNoRoute, next)
		}
		if budget > e.Weight()+nextToExit {
			if err = c.step(PhasePartial, cur, next, best, budget); err != nil {
				return err
			}
			continue
		}

		return c.exitDirect(toExit)
	}
}

func coinsLeft(nodes []*core.Vertex) int {
	n := 0
	for _, v := range nodes {
		n += v.Coins()
	}

	return n
}

// evaluate scores every coin vertex reachable from cur and returns the one
// with the lowest pathCost/rewardSum, or nil if none holds coins.
// Candidates are scanned in ascending ID and replaced only on a strictly
// lower ratio, so ties go to the lowest ID.
func (c *collector) evaluate(cur *core.Vertex) (*plan, error) {
	tree, err := dijkstra.Tree(cur)
	if err != nil {
		return nil, fmt.Errorf("diver: distances from %v: %w", cur, err)
	}

	nodes := append([]*core.Vertex(nil), c.s.AllNodes()...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	var best *plan
	for _, v := range nodes {
		// A zero-length path cannot be advanced along.
		if v == cur || v.Coins() == 0 {
			continue
		}
		path := tree.PathTo(v)
		if len(path) == 0 {
			continue
		}
		cost, err := dijkstra.PathCost(path)
		if err != nil {
			return nil, fmt.Errorf("diver: candidate %v: %w", v, err)
		}
		reward := dijkstra.RewardSum(path)
		ratio := float64(cost) / float64(reward)
		if best == nil || ratio < best.ratio {
			best = &plan{dest: v, path: path, cost: cost, reward: reward, ratio: ratio}
		}
	}

	return best, nil
}

// exitDirect walks toExit, the shortest-path tree grown from the exit, one
// tree edge at a time. The tree is fixed for the whole walk, so ties between
// equal-cost routes cannot send the diver back and forth.
func (c *collector) exitDirect(toExit *dijkstra.Result) error {
	cur := c.s.CurrentNode()
	cost, ok := toExit.Dist(cur)
	if !ok {
		return fmt.Errorf("%w: from %v", ErrNoRoute, cur)
	}
	if budget := c.s.StepsToGo(); budget < cost {
		return fmt.Errorf("%w: need %d, have %d at %v", ErrInsufficientBudget, cost, budget, cur)
	}

	for exit := toExit.Source(); cur != exit; {
		next, ok := toExit.Prev(cur)
		if !ok {
			return fmt.Errorf("%w: from %v", ErrNoRoute, cur)
		}
		if err := c.step(PhaseExit, cur, next, nil, c.s.StepsToGo()); err != nil {
			return err
		}
		if cur = c.s.CurrentNode(); cur != next {
			return fmt.Errorf("diver: moved to %v but standing on %v", next, cur)
		}
	}
	c.log.WithField("budget", c.s.StepsToGo()).Debug("standing on the exit")

	return nil
}

// step reports the decision and performs one move.
func (c *collector) step(ph Phase, from, to *core.Vertex, p *plan, budget int64) error {
	d := Decision{Phase: ph, From: from, To: to, Budget: budget}
	fields := logrus.Fields{
		"step":   ph.String(),
		"from":   from.ID(),
		"to":     to.ID(),
		"budget": budget,
	}
	if p != nil {
		d.Dest, d.Ratio = p.dest, p.ratio
		fields["dest"] = p.dest.ID()
		fields["ratio"] = p.ratio
	}
	c.cfg.OnDecision(d)
	c.log.WithFields(fields).Debug("move")

	if err := c.s.MoveTo(to); err != nil {
		return fmt.Errorf("diver: move %v→%v: %w", from, to, err)
	}

	return nil
}
