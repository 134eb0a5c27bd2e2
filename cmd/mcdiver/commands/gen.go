package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcdiver/builder"
	"github.com/katalvlaran/mcdiver/sim"
)

func newGenCmd(rf *rootFlags) *cobra.Command {
	var (
		seed       int64
		rows, cols int
		loops      float64
		out        string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sim.Generate(seed, rows, cols, builder.WithLoopProbability(loops))
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				data, err := sc.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)

				return err
			}
			if err = sc.Save(out); err != nil {
				return err
			}
			rf.log.WithField("file", out).WithField("vertices", len(sc.Vertices)).Info("scenario written")

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "generator seed")
	cmd.Flags().IntVar(&rows, "rows", defaultRows, "sewer rows")
	cmd.Flags().IntVar(&cols, "cols", defaultCols, "sewer columns")
	cmd.Flags().Float64Var(&loops, "loops", builder.DefaultLoopProbability, "probability of each extra loop pipe")
	cmd.Flags().StringVarP(&out, "output", "o", "", fmt.Sprintf("output file (%q or empty for stdout)", "-"))

	return cmd
}
