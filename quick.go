package sortbench

import "cmp"

// QuickSort sorts s in place using quick sort with a middle-index pivot and
// returns the number of element comparisons performed.
//
// Each partitioning step compares every element other than the pivot against
// the pivot value exactly once, bucketing it into the less-than or the
// greater-or-equal side while preserving scan order within each side. The
// two sides are then sorted recursively. Recursion works over index ranges
// of the backing array with one shared scratch buffer, so auxiliary memory
// is O(n) total rather than O(n) per recursive call.
//
// Expected cost is O(n log n) comparisons. Degenerate inputs where the
// middle element repeatedly bounds the whole range (for example a constant
// sequence, where every non-pivot element lands on the greater-or-equal
// side) cost the full n(n-1)/2.
func QuickSort[T cmp.Ordered](s []T) uint64 {
	if len(s) < 2 {
		return 0
	}
	return quickRange(s, make([]T, len(s)), 0, len(s))
}

// quickRange partitions s[lo:hi) around its middle element and recurses into
// both sides. scratch must be at least as long as s.
func quickRange[T cmp.Ordered](s, scratch []T, lo, hi int) uint64 {
	if hi-lo < 2 {
		return 0
	}
	mid := lo + (hi-lo)/2
	pivot := s[mid]

	// Bucket into scratch: the less-than side grows up from lo, the
	// greater-or-equal side grows down from hi. Writing the latter in
	// reverse keeps scan order when it is copied back below.
	var comps uint64
	small, big := 0, 0
	for i := lo; i < hi; i++ {
		if i == mid {
			continue
		}
		comps++
		if s[i] < pivot {
			scratch[lo+small] = s[i]
			small++
		} else {
			big++
			scratch[hi-big] = s[i]
		}
	}

	copy(s[lo:lo+small], scratch[lo:lo+small])
	s[lo+small] = pivot
	for j := 0; j < big; j++ {
		s[lo+small+1+j] = scratch[hi-1-j]
	}

	comps += quickRange(s, scratch, lo, lo+small)
	comps += quickRange(s, scratch, lo+small+1, hi)
	return comps
}
