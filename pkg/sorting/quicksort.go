package sorting

import (
	"fmt"
	"math/rand"
)

// PivotStrategy selects which index of a partition becomes the pivot.
type PivotStrategy uint8

const (
	PivotFirst PivotStrategy = iota + 1
	PivotLast
	PivotMedianOfThree
	PivotRandom
)

func (p PivotStrategy) String() string {
	switch p {
	case PivotFirst:
		return "first"
	case PivotLast:
		return "last"
	case PivotMedianOfThree:
		return "median_of_three"
	case PivotRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParsePivotStrategy converts a strategy name to a PivotStrategy.
func ParsePivotStrategy(s string) (PivotStrategy, error) {
	switch s {
	case "first":
		return PivotFirst, nil
	case "last":
		return PivotLast, nil
	case "median_of_three":
		return PivotMedianOfThree, nil
	case "random":
		return PivotRandom, nil
	default:
		return 0, fmt.Errorf("unknown pivot strategy: %q", s)
	}
}

// QuickSort returns a sorted copy of arr (not stable). The input is never
// mutated. Partitioning is Lomuto-style over a private copy; each scan
// comparison emits one KindComparison event and each element move one
// KindSwap event on sink. A nil sink disables instrumentation.
//
// seed feeds a generator private to this invocation and only matters for
// PivotRandom; the same arr and seed always produce identical output and
// identical event counts. An unrecognized strategy is reported
// immediately as an error.
func QuickSort(arr []int, strategy PivotStrategy, sink Sink, seed int64) ([]int, error) {
	switch strategy {
	case PivotFirst, PivotLast, PivotMedianOfThree, PivotRandom:
	default:
		return nil, fmt.Errorf("unknown pivot strategy: %d", strategy)
	}
	if sink == nil {
		sink = Discard
	}

	out := make([]int, len(arr))
	copy(out, arr)
	if len(out) <= 1 {
		return out, nil
	}

	q := &quickSorter{arr: out, strategy: strategy, sink: sink}
	if strategy == PivotRandom {
		q.rng = rand.New(rand.NewSource(seed))
	}
	q.sort(0, len(out)-1)
	return out, nil
}

type quickSorter struct {
	arr      []int
	strategy PivotStrategy
	sink     Sink
	rng      *rand.Rand
}

// sort recurses into the smaller partition and loops on the larger, so
// stack depth stays O(log n) even on adversarial input.
func (q *quickSorter) sort(left, right int) {
	for left < right {
		pivotIdx := q.choosePivot(left, right)
		final := q.partition(left, right, pivotIdx)

		if final-left < right-final {
			q.sort(left, final-1)
			left = final + 1
		} else {
			q.sort(final+1, right)
			right = final - 1
		}
	}
}

func (q *quickSorter) choosePivot(left, right int) int {
	switch q.strategy {
	case PivotFirst:
		return left
	case PivotLast:
		return right
	case PivotMedianOfThree:
		return q.medianOfThree(left, right)
	default: // PivotRandom
		return left + q.rng.Intn(right-left+1)
	}
}

// medianOfThree picks the median of the elements at left, mid and right.
// It always emits exactly two comparison events, and resolves ties in a
// fixed order: mid first, then left, else right. Callers depend on that
// order for reproducible event counts.
func (q *quickSorter) medianOfThree(left, right int) int {
	mid := (left + right) / 2
	a, b, c := q.arr[left], q.arr[mid], q.arr[right]
	q.sink.Record(KindComparison)
	q.sink.Record(KindComparison)
	switch {
	case (a <= b && b <= c) || (c <= b && b <= a):
		return mid
	case (b <= a && a <= c) || (c <= a && a <= b):
		return left
	default:
		return right
	}
}

// partition moves the pivot to the end, sweeps elements <= pivot into the
// low side, then plants the pivot at its final position, which it returns.
func (q *quickSorter) partition(left, right, pivotIdx int) int {
	pivot := q.arr[pivotIdx]

	q.arr[pivotIdx], q.arr[right] = q.arr[right], q.arr[pivotIdx]
	q.sink.Record(KindSwap)

	store := left
	for i := left; i < right; i++ {
		q.sink.Record(KindComparison)
		if q.arr[i] <= pivot {
			if i != store {
				q.arr[i], q.arr[store] = q.arr[store], q.arr[i]
				q.sink.Record(KindSwap)
			}
			store++
		}
	}

	q.arr[store], q.arr[right] = q.arr[right], q.arr[store]
	q.sink.Record(KindSwap)

	return store
}
