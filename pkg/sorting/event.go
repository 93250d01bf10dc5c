// Package sorting provides instrumented divide-and-conquer sorts.
// Each sort works on a private copy of its input and reports
// comparison/swap events to an optional Sink.
package sorting

// Kind represents the type of instrumentation event
type Kind uint8

const (
	KindComparison Kind = iota + 1
	KindSwap
)

func (k Kind) String() string {
	switch k {
	case KindComparison:
		return "comparison"
	case KindSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// Sink receives instrumentation events emitted during a sort.
// Record is called synchronously and must not panic; the sort does not
// inspect the sink's state.
type Sink interface {
	Record(k Kind)
}

// Counter is a Sink that tallies events. The caller owns the counts and
// reads them after the sort returns. Not safe for concurrent sorts.
type Counter struct {
	Comparisons uint64
	Swaps       uint64
}

func (c *Counter) Record(k Kind) {
	switch k {
	case KindComparison:
		c.Comparisons++
	case KindSwap:
		c.Swaps++
	}
}

// Discard is a Sink that drops all events.
var Discard Sink = discard{}

type discard struct{}

func (discard) Record(Kind) {}
