package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "benchmark divide-and-conquer sorting algorithms",
	Long: `sortbench times merge sort and quick sort over synthetic datasets,
optionally counting comparisons and swaps, and writes CSV/JSON reports.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
