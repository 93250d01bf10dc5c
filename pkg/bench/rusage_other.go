//go:build !linux

package bench

import "runtime"

// maxRSS approximates the process footprint from the Go runtime's view
// on platforms without a getrusage probe.
func maxRSS() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.Sys
}
