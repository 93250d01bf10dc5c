package bench

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Summary aggregates the runs of one (algorithm, pivot, dataset, size)
// configuration.
type Summary struct {
	Algorithm string `json:"algorithm"`
	Pivot     string `json:"pivot,omitempty"`
	Dataset   string `json:"dataset"`
	Size      int    `json:"size"`
	Runs      int    `json:"runs"`

	TimeMeanSeconds  float64 `json:"time_mean_s"`
	TimeStdSeconds   float64 `json:"time_std_s"`
	TimeBestSeconds  float64 `json:"time_best_s"`
	TimeWorstSeconds float64 `json:"time_worst_s"`

	MemoryMeanBytes float64 `json:"memory_mean_bytes"`
	MemoryStdBytes  float64 `json:"memory_std_bytes"`
	MemoryPeakBytes uint64  `json:"memory_peak_bytes"`

	ComparisonsMean float64 `json:"comparisons_mean,omitempty"`
	ComparisonsStd  float64 `json:"comparisons_std,omitempty"`
	SwapsMean       float64 `json:"swaps_mean,omitempty"`
	SwapsStd        float64 `json:"swaps_std,omitempty"`
}

// SummaryKey builds the key a configuration's summary is filed under.
func SummaryKey(algorithm, pivot, dataset string, size int) string {
	if pivot == "" {
		pivot = "N/A"
	}
	return fmt.Sprintf("%s_%s_%s_%d", algorithm, pivot, dataset, size)
}

// Summarize groups result rows by configuration and computes per-group
// statistics. Comparison and swap statistics only appear for groups
// whose rows carry nonzero counts, i.e. instrumented runs.
func Summarize(results []Result) map[string]Summary {
	grouped := lo.GroupBy(results, func(r Result) string {
		return SummaryKey(r.Algorithm, r.Pivot, r.Dataset, r.Size)
	})

	summaries := make(map[string]Summary, len(grouped))
	for key, rows := range grouped {
		first := rows[0]
		times := lo.Map(rows, func(r Result, _ int) float64 { return r.TimeSeconds })
		memories := lo.Map(rows, func(r Result, _ int) float64 { return float64(r.PeakMemBytes) })

		s := Summary{
			Algorithm:        first.Algorithm,
			Pivot:            first.Pivot,
			Dataset:          first.Dataset,
			Size:             first.Size,
			Runs:             len(rows),
			TimeMeanSeconds:  mean(times),
			TimeStdSeconds:   stdev(times),
			TimeBestSeconds:  lo.Min(times),
			TimeWorstSeconds: lo.Max(times),
			MemoryMeanBytes:  mean(memories),
			MemoryStdBytes:   stdev(memories),
			MemoryPeakBytes: lo.MaxBy(rows, func(a, b Result) bool {
				return a.PeakMemBytes > b.PeakMemBytes
			}).PeakMemBytes,
		}

		comparisons := counts(rows, func(r Result) uint64 { return r.Comparisons })
		if len(comparisons) > 0 {
			s.ComparisonsMean = mean(comparisons)
			s.ComparisonsStd = stdev(comparisons)
		}
		swaps := counts(rows, func(r Result) uint64 { return r.Swaps })
		if len(swaps) > 0 {
			s.SwapsMean = mean(swaps)
			s.SwapsStd = stdev(swaps)
		}

		summaries[key] = s
	}
	return summaries
}

// counts extracts a count series, keeping only nonzero entries so
// uninstrumented runs contribute no statistics.
func counts(rows []Result, get func(Result) uint64) []float64 {
	values := lo.FilterMap(rows, func(r Result, _ int) (float64, bool) {
		v := get(r)
		return float64(v), v > 0
	})
	return values
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return lo.Sum(values) / float64(len(values))
}

// stdev is the sample standard deviation, 0 for fewer than two values.
func stdev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
