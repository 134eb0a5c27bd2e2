package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcdiver/sim"
)

func newBatchCmd(rf *rootFlags) *cobra.Command {
	var (
		runs       int
		parallel   int
		firstSeed  int64
		rows, cols int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Play many generated sewers and summarize",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if runs < 1 {
				return fmt.Errorf("--runs must be ≥ 1, got %d", runs)
			}
			seeds := make([]int64, runs)
			for i := range seeds {
				seeds[i] = firstSeed + int64(i)
			}
			gen := func(seed int64) (*sim.Scenario, error) {
				return sim.Generate(seed, rows, cols)
			}

			reports, err := sim.RunBatch(cmd.Context(), seeds, gen, parallel, sim.WithLogger(rf.log))
			if err != nil {
				return err
			}
			st := sim.Summarize(reports)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "runs:        %d\n", st.Runs)
			fmt.Fprintf(w, "found ring:  %d\n", st.FoundRing)
			fmt.Fprintf(w, "escaped:     %d\n", st.Escaped)
			fmt.Fprintf(w, "mean score:  %.2f\n", st.MeanScore)
			fmt.Fprintf(w, "best score:  %d\n", st.BestScore)
			fmt.Fprintf(w, "coin share:  %.1f%%\n", 100*st.CoinShare)

			return nil
		},
	}
	cmd.Flags().IntVarP(&runs, "runs", "n", 100, "number of games")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", runtime.NumCPU(), "games played at once")
	cmd.Flags().Int64Var(&firstSeed, "seed", 1, "seed of the first game; the rest follow consecutively")
	cmd.Flags().IntVar(&rows, "rows", defaultRows, "sewer rows")
	cmd.Flags().IntVar(&cols, "cols", defaultCols, "sewer columns")

	return cmd
}
