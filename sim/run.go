// SPDX-License-Identifier: MIT

package sim

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mcdiver/diver"
)

// ErrMissionFailed indicates the diver did not reach the ring, or did not
// stand on the exit when the scram phase ended.
var ErrMissionFailed = errors.New("sim: mission failed")

// Options configures Run and RunBatch.
type Options struct {
	Logger     logrus.FieldLogger
	Budget     int64
	OnDecision func(diver.Decision)
}

// Option represents a functional option for Run.
type Option func(*Options)

// WithLogger routes game and decision logs to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("sim: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithBudget overrides the scenario budget. Panics if b < 0.
func WithBudget(b int64) Option {
	if b < 0 {
		panic(fmt.Sprintf("sim: WithBudget(%d)", b))
	}
	return func(o *Options) {
		o.Budget = b
	}
}

// WithOnDecision forwards every scram decision to fn. Panics on nil.
func WithOnDecision(fn func(diver.Decision)) Option {
	if fn == nil {
		panic("sim: WithOnDecision(nil)")
	}
	return func(o *Options) {
		o.OnDecision = fn
	}
}

// DefaultOptions returns Options with a discarding logger and the
// scenario's own budget.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// Report summarizes one game.
type Report struct {
	Scenario   string `json:"scenario" yaml:"scenario"`
	FoundRing  bool   `json:"found_ring" yaml:"found_ring"`
	Escaped    bool   `json:"escaped" yaml:"escaped"`
	Coins      int    `json:"coins" yaml:"coins"`
	TotalCoins int    `json:"total_coins" yaml:"total_coins"`
	SeekSteps  int    `json:"seek_steps" yaml:"seek_steps"`
	ScramMoves int    `json:"scram_moves" yaml:"scram_moves"`
	Budget     int64  `json:"budget" yaml:"budget"`
	BudgetLeft int64  `json:"budget_left" yaml:"budget_left"`
	// Score is Coins when the diver escaped, 0 otherwise.
	Score int `json:"score" yaml:"score"`
}

// Run plays sc: seek from the entrance to the ring, then scram to the exit.
//
// The Report is returned whenever the game started, even on failure.
// A failed seek or scram, or ending anywhere but the exit, yields an error
// wrapping ErrMissionFailed together with the underlying cause.
func Run(sc *Scenario, opts ...Option) (*Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if sc == nil {
		return nil, fmt.Errorf("%w: nil scenario", ErrInvalidScenario)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger.WithField("scenario", sc.Name)

	// 1) Set up the game on a fresh graph.
	g, err := sc.Graph()
	if err != nil {
		return nil, err
	}
	budget := cfg.Budget
	if budget == 0 {
		if budget, err = sc.ResolveBudget(g); err != nil {
			return nil, err
		}
	}
	gm, err := NewGame(sc, budget, log)
	if err != nil {
		return nil, err
	}
	rep := &Report{Scenario: sc.Name, TotalCoins: gm.Graph().TotalCoins(), Budget: budget}
	defer func() {
		rep.Coins = gm.coins
		rep.SeekSteps = gm.seekSteps
		rep.ScramMoves = gm.scramMoves
		rep.BudgetLeft = gm.steps
		if rep.Escaped {
			rep.Score = rep.Coins
		}
	}()

	dopts := []diver.Option{diver.WithLogger(log)}
	if cfg.OnDecision != nil {
		dopts = append(dopts, diver.WithOnDecision(cfg.OnDecision))
	}

	// 2) Seek.
	if err = diver.Seek(gm.Seeker(), dopts...); err != nil {
		return rep, fmt.Errorf("%w: seek: %w", ErrMissionFailed, err)
	}
	if gm.cur != gm.ring {
		return rep, fmt.Errorf("%w: seek ended on %v, ring is %v", ErrMissionFailed, gm.cur, gm.ring)
	}
	rep.FoundRing = true
	log.WithFields(logrus.Fields{"steps": gm.seekSteps, "budget": budget}).Info("found the ring")

	// 3) Scram.
	if err = diver.Scram(gm.Scrammer(), dopts...); err != nil {
		return rep, fmt.Errorf("%w: scram: %w", ErrMissionFailed, err)
	}
	if gm.cur != gm.exit {
		return rep, fmt.Errorf("%w: scram ended on %v, exit is %v", ErrMissionFailed, gm.cur, gm.exit)
	}
	rep.Escaped = true
	log.WithFields(logrus.Fields{"coins": gm.coins, "budget_left": gm.steps}).Info("escaped")

	return rep, nil
}

// RunBatch plays one generated scenario per seed, at most parallel at a
// time (parallel ≤ 0 means no limit). Reports are in seed order.
//
// A mission failure is recorded in its Report and does not stop the
// batch; a generator or validation error does, and cancels the rest.
func RunBatch(
	ctx context.Context,
	seeds []int64,
	gen func(seed int64) (*Scenario, error),
	parallel int,
	opts ...Option,
) ([]*Report, error) {
	if gen == nil {
		return nil, fmt.Errorf("sim: RunBatch: nil generator")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	reports := make([]*Report, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		eg.SetLimit(parallel)
	}
	for i, seed := range seeds {
		i, seed := i, seed
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sc, err := gen(seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			runOpts := append(append([]Option(nil), opts...),
				WithLogger(cfg.Logger.WithField("seed", seed)))
			rep, err := Run(sc, runOpts...)
			reports[i] = rep
			if err != nil && !errors.Is(err, ErrMissionFailed) {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			if err != nil {
				cfg.Logger.WithField("seed", seed).WithError(err).Warn("mission failed")
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return reports, err
	}

	return reports, nil
}

// Stats aggregates a batch.
type Stats struct {
	Runs       int
	Escaped    int
	FoundRing  int
	TotalScore int
	MeanScore  float64
	BestScore  int
	// CoinShare is collected coins over available coins across all runs.
	CoinShare float64
}

// Summarize aggregates reports; nil entries are skipped.
func Summarize(reports []*Report) Stats {
	var st Stats
	var coins, total int
	for _, r := range reports {
		if r == nil {
			continue
		}
		st.Runs++
		if r.FoundRing {
			st.FoundRing++
		}
		if r.Escaped {
			st.Escaped++
		}
		st.TotalScore += r.Score
		if r.Score > st.BestScore {
			st.BestScore = r.Score
		}
		coins += r.Coins
		total += r.TotalCoins
	}
	if st.Runs > 0 {
		st.MeanScore = float64(st.TotalScore) / float64(st.Runs)
	}
	if total > 0 {
		st.CoinShare = float64(coins) / float64(total)
	}

	return st
}
