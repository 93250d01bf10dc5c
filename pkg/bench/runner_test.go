package bench_test

import (
	"io"
	"log"
	"slices"
	"testing"

	"github.com/amirkhaki/sortbench/pkg/bench"
	"github.com/amirkhaki/sortbench/pkg/dataset"
	"github.com/amirkhaki/sortbench/pkg/sorting"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRunnerGrid(t *testing.T) {
	cfg := bench.Config{
		Algorithms: []bench.Algorithm{bench.AlgorithmMerge, bench.AlgorithmQuick},
		Pivot:      sorting.PivotFirst,
		Datasets:   []dataset.Kind{dataset.Random, dataset.Reverse},
		Sizes:      []int{50, 100},
		Runs:       2,
		Seed:       7,
		Instrument: true,
	}

	results, err := bench.NewRunner(cfg, testLogger()).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 2 algorithms x 2 datasets x 2 sizes x 2 runs
	if len(results) != 16 {
		t.Fatalf("got %d rows, want 16", len(results))
	}

	for _, r := range results {
		if r.TimeSeconds < 0 {
			t.Errorf("negative time in row %+v", r)
		}
		if r.Comparisons == 0 {
			t.Errorf("instrumented run has zero comparisons: %+v", r)
		}
		switch r.Algorithm {
		case "merge":
			if r.Pivot != "" {
				t.Errorf("merge row carries pivot %q", r.Pivot)
			}
			if r.Swaps != 0 {
				t.Errorf("merge sort emitted %d swaps", r.Swaps)
			}
		case "quick":
			if r.Pivot != "first" {
				t.Errorf("quick row pivot = %q, want first", r.Pivot)
			}
			if r.Swaps == 0 {
				t.Errorf("quick sort emitted no swaps: %+v", r)
			}
		default:
			t.Errorf("unexpected algorithm %q", r.Algorithm)
		}
		if r.Seed != 7 {
			t.Errorf("row seed = %d, want 7", r.Seed)
		}
	}
}

// Counts are deterministic across batches with the same seed; only
// timings and memory may differ.
func TestRunnerDeterministicCounts(t *testing.T) {
	cfg := bench.Config{
		Algorithms: []bench.Algorithm{bench.AlgorithmQuick},
		Pivot:      sorting.PivotRandom,
		Datasets:   []dataset.Kind{dataset.Random},
		Sizes:      []int{200},
		Runs:       3,
		Seed:       11,
		Instrument: true,
	}

	first, err := bench.NewRunner(cfg, testLogger()).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, err := bench.NewRunner(cfg, testLogger()).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Comparisons != second[i].Comparisons || first[i].Swaps != second[i].Swaps {
			t.Errorf("run %d counts differ: (%d,%d) vs (%d,%d)", i,
				first[i].Comparisons, first[i].Swaps,
				second[i].Comparisons, second[i].Swaps)
		}
	}
}

func TestRunnerUninstrumented(t *testing.T) {
	cfg := bench.Config{
		Algorithms: []bench.Algorithm{bench.AlgorithmMerge},
		Pivot:      sorting.PivotFirst,
		Datasets:   []dataset.Kind{dataset.Sorted},
		Sizes:      []int{10},
		Runs:       1,
		Seed:       0,
	}

	results, err := bench.NewRunner(cfg, testLogger()).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d rows, want 1", len(results))
	}
	if results[0].Comparisons != 0 || results[0].Swaps != 0 {
		t.Errorf("uninstrumented run carries counts: %+v", results[0])
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, algo := range []bench.Algorithm{bench.AlgorithmMerge, bench.AlgorithmQuick} {
		got, err := bench.ParseAlgorithm(algo.String())
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) failed: %v", algo.String(), err)
		}
		if got != algo {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", algo.String(), got, algo)
		}
	}

	if _, err := bench.ParseAlgorithm("bubble"); err == nil {
		t.Error("expected error for unknown algorithm name")
	}
}

func TestMeasureSortsCorrectly(t *testing.T) {
	arr := []int{9, 1, 8, 2, 7}
	sorted, m, err := bench.Measure(func() ([]int, error) {
		return sorting.MergeSort(arr, nil), nil
	})
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if !slices.Equal(sorted, []int{1, 2, 7, 8, 9}) {
		t.Errorf("got %v", sorted)
	}
	if m.TimeSeconds < 0 {
		t.Errorf("negative time: %v", m.TimeSeconds)
	}
	if m.PeakMemBytes == 0 {
		t.Errorf("expected nonzero peak memory")
	}
}

func TestMeasurePropagatesError(t *testing.T) {
	_, _, err := bench.Measure(func() ([]int, error) {
		_, err := sorting.QuickSort([]int{3, 1}, sorting.PivotStrategy(0), nil, 0)
		return nil, err
	})
	if err == nil {
		t.Error("expected error from failing sort")
	}
}
