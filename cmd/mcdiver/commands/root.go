// Package commands cmd/mcdiver/commands/root.go
package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Default generator dimensions.
const (
	defaultRows = 8
	defaultCols = 8
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	logLevel string
	log      *logrus.Logger
}

// NewRootCmd builds the mcdiver command tree.
func NewRootCmd() *cobra.Command {
	rf := &rootFlags{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "mcdiver",
		Short: "Find the ring, grab the coins, get out",
		Long: `
  mcdiver plays the sewer diver: a depth-first seek for the ring guided by
  the distance hint, then a budgeted greedy scram that collects coins on
  the way to the exit.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(rf.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			rf.log.SetLevel(lvl)
			rf.log.SetOutput(cmd.ErrOrStderr())
			rf.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", "info", "log level: panic, fatal, error, warn, info, debug, trace")

	rootCmd.AddCommand(newRunCmd(rf), newGenCmd(rf), newBatchCmd(rf))

	return rootCmd
}
