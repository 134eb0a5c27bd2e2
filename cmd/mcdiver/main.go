// Package main is the mcdiver command line.
package main

import (
	"os"

	"github.com/katalvlaran/mcdiver/cmd/mcdiver/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
