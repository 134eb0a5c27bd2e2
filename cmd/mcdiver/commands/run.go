package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcdiver/sim"
)

func newRunCmd(rf *rootFlags) *cobra.Command {
	var (
		scenarioPath string
		seed         int64
		rows, cols   int
		budget       int64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play one scenario",
		Long: `
  Play a scenario file, or a sewer generated from --seed when no file is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				sc  *sim.Scenario
				err error
			)
			if scenarioPath != "" {
				sc, err = sim.LoadScenario(scenarioPath)
			} else {
				sc, err = sim.Generate(seed, rows, cols)
			}
			if err != nil {
				return err
			}

			opts := []sim.Option{sim.WithLogger(rf.log)}
			if budget > 0 {
				opts = append(opts, sim.WithBudget(budget))
			}
			rep, err := sim.Run(sc, opts...)
			if rep != nil {
				printReport(cmd.OutOrStdout(), rep)
			}
			if errors.Is(err, sim.ErrMissionFailed) {
				rf.log.WithError(err).Error("mission failed")
			}

			return err
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "f", "", "scenario YAML file")
	cmd.Flags().Int64Var(&seed, "seed", 1, "generator seed")
	cmd.Flags().IntVar(&rows, "rows", defaultRows, "generated sewer rows")
	cmd.Flags().IntVar(&cols, "cols", defaultCols, "generated sewer columns")
	cmd.Flags().Int64Var(&budget, "budget", 0, "override the scram budget (0 keeps the scenario's)")

	return cmd
}

func printReport(w io.Writer, r *sim.Report) {
	fmt.Fprintf(w, "scenario:    %s\n", r.Scenario)
	fmt.Fprintf(w, "found ring:  %t (%d steps)\n", r.FoundRing, r.SeekSteps)
	fmt.Fprintf(w, "escaped:     %t (%d moves)\n", r.Escaped, r.ScramMoves)
	fmt.Fprintf(w, "coins:       %d / %d\n", r.Coins, r.TotalCoins)
	fmt.Fprintf(w, "budget:      %d left of %d\n", r.BudgetLeft, r.Budget)
	fmt.Fprintf(w, "score:       %d\n", r.Score)
}
