package sorting

// MergeSort returns a stably sorted copy of arr. The input is never
// mutated. Every head-to-head comparison during merging emits one
// KindComparison event on sink; merge sort never emits KindSwap.
// A nil sink disables instrumentation.
func MergeSort(arr []int, sink Sink) []int {
	if sink == nil {
		sink = Discard
	}
	if len(arr) <= 1 {
		out := make([]int, len(arr))
		copy(out, arr)
		return out
	}
	return mergeSort(arr, sink)
}

func mergeSort(arr []int, sink Sink) []int {
	if len(arr) <= 1 {
		out := make([]int, len(arr))
		copy(out, arr)
		return out
	}
	mid := len(arr) / 2
	left := mergeSort(arr[:mid], sink)
	right := mergeSort(arr[mid:], sink)
	return merge(left, right, sink)
}

// merge combines two sorted runs. Ties take the left head, which keeps
// the sort stable. The exhausted-side remainder is appended without
// further events.
func merge(left, right []int, sink Sink) []int {
	result := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		sink.Record(KindComparison)
		if left[i] <= right[j] {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}
