// Package bench runs instrumented sorting benchmarks over synthetic
// datasets and aggregates the measurements into report artifacts.
package bench

import (
	"runtime"
	"time"
)

// Metrics holds the measurements of a single benchmark run. It is
// immutable after Measure returns.
type Metrics struct {
	TimeSeconds  float64
	PeakMemBytes uint64
	Comparisons  uint64
	Swaps        uint64
}

// Measure runs fn once, recording wall-clock time and peak memory.
// Peak memory is the larger of the bytes allocated during fn and the
// process max RSS, so it captures both the out-of-place merge buffers
// and the resident footprint.
func Measure(fn func() ([]int, error)) ([]int, Metrics, error) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	start := time.Now()
	sorted, err := fn()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	if err != nil {
		return nil, Metrics{}, err
	}

	allocated := after.TotalAlloc - before.TotalAlloc
	m := Metrics{
		TimeSeconds:  elapsed.Seconds(),
		PeakMemBytes: max(allocated, maxRSS()),
	}
	return sorted, m, nil
}
