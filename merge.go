package sortbench

import (
	"cmp"
	"fmt"
)

// MergeSort sorts s in place using merge sort and returns the number of
// element comparisons performed.
//
// The sequence is split at its midpoint, both halves are sorted recursively
// (length <= 1 is the zero-comparison base case), and the sorted halves are
// merged back into the original positions. The merge walks both halves with
// independent cursors and counts one comparison per output position where
// both candidates exist; once a half is exhausted the remainder of the other
// half is copied over without further comparisons. Ties go to the right
// half. The count is always O(n log n), never more than n*ceil(log2 n),
// regardless of the input order.
func MergeSort[T cmp.Ordered](s []T) uint64 {
	if len(s) < 2 {
		return 0
	}
	return mergeRange(s, 0, len(s))
}

// mergeRange sorts s[lo:hi) and returns the comparisons spent on this range
// and all ranges below it. The merge copies the two halves into O(n)
// auxiliary slices before walking them.
func mergeRange[T cmp.Ordered](s []T, lo, hi int) uint64 {
	if hi-lo < 2 {
		return 0
	}
	mid := lo + (hi-lo)/2
	comps := mergeRange(s, lo, mid)
	comps += mergeRange(s, mid, hi)

	left := append([]T(nil), s[lo:mid]...)
	right := append([]T(nil), s[mid:hi]...)

	l, r := 0, 0
	for i := lo; i < hi; i++ {
		switch {
		case l == len(left):
			s[i] = right[r]
			r++
		case r == len(right):
			s[i] = left[l]
			l++
		default:
			comps++
			if left[l] < right[r] {
				s[i] = left[l]
				l++
			} else {
				s[i] = right[r]
				r++
			}
		}
	}
	if l != len(left) || r != len(right) {
		// Both cursors must be exhausted exactly when the range fills.
		// Anything else is a bookkeeping bug, not a recoverable state.
		panic(fmt.Sprintf("sortbench: merge cursor accounting broken: left %d/%d, right %d/%d, range [%d,%d)",
			l, len(left), r, len(right), lo, hi))
	}
	return comps
}
