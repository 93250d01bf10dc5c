package bench

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/amirkhaki/sortbench/pkg/dataset"
	"github.com/amirkhaki/sortbench/pkg/sorting"
)

// Algorithm identifies a sorting algorithm under benchmark
type Algorithm uint8

const (
	AlgorithmMerge Algorithm = iota + 1
	AlgorithmQuick
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmMerge:
		return "merge"
	case AlgorithmQuick:
		return "quick"
	default:
		return "unknown"
	}
}

// ParseAlgorithm converts an algorithm name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "merge":
		return AlgorithmMerge, nil
	case "quick":
		return AlgorithmQuick, nil
	default:
		return 0, fmt.Errorf("unknown algorithm: %q", s)
	}
}

// Result is one row of the benchmark table, one per run.
type Result struct {
	Algorithm    string  `json:"algorithm"`
	Pivot        string  `json:"pivot,omitempty"`
	Dataset      string  `json:"dataset"`
	Size         int     `json:"size"`
	Run          int     `json:"run"`
	TimeSeconds  float64 `json:"time_s"`
	PeakMemBytes uint64  `json:"peak_mem_bytes"`
	Comparisons  uint64  `json:"comparisons,omitempty"`
	Swaps        uint64  `json:"swaps,omitempty"`
	Seed         int64   `json:"seed"`
}

// ErrBatchFailed marks a batch in which at least one configuration
// produced output that disagreed with the reference ordering. Rows from
// the other configurations are still returned.
var ErrBatchFailed = errors.New("correctness check failed for one or more configurations")

// Config describes a benchmark batch.
type Config struct {
	Algorithms []Algorithm
	Pivot      sorting.PivotStrategy
	Datasets   []dataset.Kind
	Sizes      []int
	Runs       int
	Seed       int64
	Instrument bool
}

// Runner executes the full algorithms x datasets x sizes x runs grid.
type Runner struct {
	cfg Config
	log *log.Logger
}

func NewRunner(cfg Config, logger *log.Logger) *Runner {
	return &Runner{cfg: cfg, log: logger}
}

// Run executes every configuration and returns the collected rows.
// A configuration whose output fails the correctness check contributes
// no rows; the remaining configurations still run, and the returned
// error is ErrBatchFailed.
func (r *Runner) Run() ([]Result, error) {
	var all []Result
	failed := false

	for _, algo := range r.cfg.Algorithms {
		for _, kind := range r.cfg.Datasets {
			for _, size := range r.cfg.Sizes {
				rows, err := r.runConfiguration(algo, kind, size)
				if err != nil {
					return all, err
				}
				if rows == nil {
					failed = true
					continue
				}
				all = append(all, rows...)
			}
		}
	}

	if failed {
		return all, ErrBatchFailed
	}
	return all, nil
}

// runConfiguration benchmarks one algorithm/dataset/size cell for the
// configured number of runs. It returns (nil, nil) when the cell is
// discarded after a correctness failure.
func (r *Runner) runConfiguration(algo Algorithm, kind dataset.Kind, size int) ([]Result, error) {
	results := make([]Result, 0, r.cfg.Runs)

	for run := 0; run < r.cfg.Runs; run++ {
		r.log.Printf("running %s on %s size=%d run=%d/%d",
			algo, kind, size, run+1, r.cfg.Runs)

		// Each run gets its own dataset seed so runs are independent
		// yet reproducible from the batch seed.
		runSeed := r.cfg.Seed + int64(run)*1000
		arr, err := dataset.Generate(size, kind, runSeed)
		if err != nil {
			return nil, err
		}

		var counter *sorting.Counter
		var sink sorting.Sink
		if r.cfg.Instrument {
			counter = &sorting.Counter{}
			sink = counter
		}

		sorted, m, err := Measure(func() ([]int, error) {
			switch algo {
			case AlgorithmMerge:
				return sorting.MergeSort(arr, sink), nil
			case AlgorithmQuick:
				return sorting.QuickSort(arr, r.cfg.Pivot, sink, runSeed)
			default:
				return nil, fmt.Errorf("unknown algorithm: %d", algo)
			}
		})
		if err != nil {
			return nil, err
		}

		expected := slices.Clone(arr)
		slices.Sort(expected)
		if !slices.Equal(sorted, expected) {
			r.log.Printf("correctness check failed for %s on %s size=%d run=%d",
				algo, kind, size, run+1)
			return nil, nil
		}

		row := Result{
			Algorithm:    algo.String(),
			Dataset:      kind.String(),
			Size:         size,
			Run:          run + 1,
			TimeSeconds:  m.TimeSeconds,
			PeakMemBytes: m.PeakMemBytes,
			Seed:         r.cfg.Seed,
		}
		if algo == AlgorithmQuick {
			row.Pivot = r.cfg.Pivot.String()
		}
		if counter != nil {
			row.Comparisons = counter.Comparisons
			row.Swaps = counter.Swaps
		}
		results = append(results, row)
	}

	return results, nil
}
