package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/amirkhaki/sortbench/pkg/bench"
	"github.com/amirkhaki/sortbench/pkg/dataset"
	"github.com/amirkhaki/sortbench/pkg/sorting"
	"github.com/spf13/cobra"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "run the benchmark grid and write CSV/JSON reports",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outdir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		logger, closeLog, err := setupLogger(outdir)
		if err != nil {
			return err
		}
		defer closeLog()

		runner := bench.NewRunner(cfg, logger)
		results, runErr := runner.Run()
		if runErr != nil && !errors.Is(runErr, bench.ErrBatchFailed) {
			return runErr
		}

		if err := bench.AppendCSV(filepath.Join(outdir, "results.csv"), results); err != nil {
			return err
		}
		if err := bench.SaveResults(filepath.Join(outdir, "runs.jsonl"), results); err != nil {
			return err
		}
		if err := bench.WriteSummaryJSON(filepath.Join(outdir, "summary.json"), bench.Summarize(results)); err != nil {
			return err
		}

		logger.Printf("wrote %d result rows to %s", len(results), outdir)
		return runErr
	},
}

var (
	algorithmsFlag string
	pivotFlag      string
	datasetsFlag   string
	sizesFlag      string
	runs           int
	seed           int64
	outdir         string
	instrument     bool
)

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringVarP(&algorithmsFlag, "algorithms", "a", "merge,quick",
		"comma-separated list of algorithms (merge, quick)")
	benchCmd.Flags().StringVarP(&pivotFlag, "pivot", "p", "random",
		"pivot strategy for quick sort (first, last, median_of_three, random)")
	benchCmd.Flags().StringVarP(&datasetsFlag, "datasets", "d",
		"sorted,reverse,random,nearly_sorted,duplicates_heavy",
		"comma-separated list of dataset kinds")
	benchCmd.Flags().StringVarP(&sizesFlag, "sizes", "s", "1000,5000,10000,50000",
		"comma-separated list of dataset sizes")
	benchCmd.Flags().IntVarP(&runs, "runs", "r", 5,
		"number of runs per configuration")
	benchCmd.Flags().Int64Var(&seed, "seed", 42,
		"random seed for reproducibility")
	benchCmd.Flags().StringVarP(&outdir, "outdir", "o", "results",
		"output directory for results")
	benchCmd.Flags().BoolVarP(&instrument, "instrument", "i", false,
		"count comparisons and swaps")
}

// buildConfig validates the flag values into a bench.Config.
func buildConfig() (bench.Config, error) {
	var cfg bench.Config

	for _, name := range splitList(algorithmsFlag) {
		algo, err := bench.ParseAlgorithm(name)
		if err != nil {
			return cfg, err
		}
		cfg.Algorithms = append(cfg.Algorithms, algo)
	}

	pivot, err := sorting.ParsePivotStrategy(pivotFlag)
	if err != nil {
		return cfg, err
	}
	cfg.Pivot = pivot

	for _, name := range splitList(datasetsFlag) {
		kind, err := dataset.ParseKind(name)
		if err != nil {
			return cfg, err
		}
		cfg.Datasets = append(cfg.Datasets, kind)
	}

	for _, s := range splitList(sizesFlag) {
		size, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("invalid size %q: %w", s, err)
		}
		cfg.Sizes = append(cfg.Sizes, size)
	}

	cfg.Runs = runs
	cfg.Seed = seed
	cfg.Instrument = instrument
	return cfg, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// setupLogger logs to stderr and to bench.log under the output
// directory, and prints a session banner.
func setupLogger(dir string) (*log.Logger, func(), error) {
	f, err := os.OpenFile(filepath.Join(dir, "bench.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.New(io.MultiWriter(os.Stderr, f), "", log.LstdFlags)
	logger.Printf("benchmark session started")
	logger.Printf("go version: %s", runtime.Version())
	logger.Printf("platform: %s/%s", runtime.GOOS, runtime.GOARCH)

	return logger, func() { f.Close() }, nil
}
