package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/amirkhaki/sortbench/pkg/sorting"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sortbench 5 3 8 1 ...")
		return
	}

	arr := make([]int, 0, len(os.Args)-1)
	for _, s := range os.Args[1:] {
		v, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid integer %q\n", s)
			os.Exit(1)
		}
		arr = append(arr, v)
	}

	counter := &sorting.Counter{}
	sorted, err := sorting.QuickSort(arr, sorting.PivotMedianOfThree, counter, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(sorted)
	fmt.Printf("comparisons=%d swaps=%d\n", counter.Comparisons, counter.Swaps)
}
