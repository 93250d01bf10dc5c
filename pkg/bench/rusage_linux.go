//go:build linux

package bench

import "golang.org/x/sys/unix"

// maxRSS returns the peak resident set size of the process in bytes.
func maxRSS() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	// ru_maxrss is reported in kilobytes on Linux.
	return uint64(ru.Maxrss) * 1024
}
