// Package main provides the mindscale CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "mindscale",
		Short: "Psychological self-assessment from the terminal",
		Long: `Mindscale lists the assessment catalog, runs instruments interactively
against the assessment API, and seeds instrument definitions from fixtures.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newListCmd(),
		newTakeCmd(),
		newPopularCmd(),
		newSeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
