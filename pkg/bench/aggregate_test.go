package bench_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/amirkhaki/sortbench/pkg/bench"
)

func TestSummaryKey(t *testing.T) {
	if got := bench.SummaryKey("quick", "random", "sorted", 1000); got != "quick_random_sorted_1000" {
		t.Errorf("SummaryKey = %q", got)
	}
	// Merge sort has no pivot.
	if got := bench.SummaryKey("merge", "", "random", 500); got != "merge_N/A_random_500" {
		t.Errorf("SummaryKey = %q", got)
	}
}

func TestSummarize(t *testing.T) {
	rows := []bench.Result{
		{
			Algorithm: "quick", Pivot: "first", Dataset: "random", Size: 100, Run: 1,
			TimeSeconds: 1.0, PeakMemBytes: 100, Comparisons: 10, Swaps: 4, Seed: 7,
		},
		{
			Algorithm: "quick", Pivot: "first", Dataset: "random", Size: 100, Run: 2,
			TimeSeconds: 3.0, PeakMemBytes: 300, Comparisons: 20, Swaps: 8, Seed: 7,
		},
	}

	got := bench.Summarize(rows)
	want := map[string]bench.Summary{
		"quick_first_random_100": {
			Algorithm:        "quick",
			Pivot:            "first",
			Dataset:          "random",
			Size:             100,
			Runs:             2,
			TimeMeanSeconds:  2.0,
			TimeStdSeconds:   math.Sqrt2,
			TimeBestSeconds:  1.0,
			TimeWorstSeconds: 3.0,
			MemoryMeanBytes:  200,
			MemoryStdBytes:   100 * math.Sqrt2,
			MemoryPeakBytes:  300,
			ComparisonsMean:  15,
			ComparisonsStd:   5 * math.Sqrt2,
			SwapsMean:        6,
			SwapsStd:         2 * math.Sqrt2,
		},
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeGroupsConfigurations(t *testing.T) {
	rows := []bench.Result{
		{Algorithm: "merge", Dataset: "sorted", Size: 100, Run: 1, TimeSeconds: 1},
		{Algorithm: "merge", Dataset: "sorted", Size: 100, Run: 2, TimeSeconds: 2},
		{Algorithm: "merge", Dataset: "sorted", Size: 200, Run: 1, TimeSeconds: 3},
		{Algorithm: "quick", Pivot: "last", Dataset: "sorted", Size: 100, Run: 1, TimeSeconds: 4},
	}

	got := bench.Summarize(rows)
	if len(got) != 3 {
		t.Fatalf("got %d groups, want 3", len(got))
	}
	if got["merge_N/A_sorted_100"].Runs != 2 {
		t.Errorf("merge_N/A_sorted_100 runs = %d, want 2", got["merge_N/A_sorted_100"].Runs)
	}
	if got["quick_last_sorted_100"].Runs != 1 {
		t.Errorf("quick_last_sorted_100 runs = %d, want 1", got["quick_last_sorted_100"].Runs)
	}
}

// Uninstrumented rows carry zero counts and must not produce
// comparison/swap statistics.
func TestSummarizeUninstrumented(t *testing.T) {
	rows := []bench.Result{
		{Algorithm: "merge", Dataset: "sorted", Size: 100, Run: 1, TimeSeconds: 1, PeakMemBytes: 10},
		{Algorithm: "merge", Dataset: "sorted", Size: 100, Run: 2, TimeSeconds: 2, PeakMemBytes: 20},
	}

	s := bench.Summarize(rows)["merge_N/A_sorted_100"]
	if s.ComparisonsMean != 0 || s.ComparisonsStd != 0 || s.SwapsMean != 0 || s.SwapsStd != 0 {
		t.Errorf("expected no count statistics, got %+v", s)
	}
}
