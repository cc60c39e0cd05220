// Package sortbench implements instrumented versions of three classic
// comparison sorts (bubble, quick, merge) that report the exact number of
// element comparisons they perform, along with a harness for running
// randomized trials, reducing the counts to mean/standard-deviation
// statistics per input length, and fitting the aggregated means to the
// theoretical growth curve of each algorithm.
package sortbench

import (
	"cmp"
	"fmt"
)

// Algorithm identifies one of the instrumented sort engines.
type Algorithm uint8

// The three engines. Every Algorithm constant has an engine behind it and a
// fixed theoretical growth model (see Algorithm.Model).
const (
	Bubble Algorithm = iota
	Quick
	Merge
)

// Algorithms lists every engine in the order trials run them and reports
// present them.
var Algorithms = [...]Algorithm{Bubble, Quick, Merge}

func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "bubble"
	case Quick:
		return "quick"
	case Merge:
		return "merge"
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// Sort runs the engine for alg on s, sorting it in place, and returns the
// number of element comparisons performed. An unknown Algorithm is a
// programming error and panics.
func Sort[T cmp.Ordered](alg Algorithm, s []T) uint64 {
	switch alg {
	case Bubble:
		return BubbleSort(s)
	case Quick:
		return QuickSort(s)
	case Merge:
		return MergeSort(s)
	}
	panic(fmt.Sprintf("sortbench: unknown algorithm %d", uint8(alg)))
}
