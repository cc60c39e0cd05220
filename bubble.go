package sortbench

import "cmp"

// BubbleSort sorts s in place using bubble sort and returns the number of
// element comparisons performed.
//
// Each pass scans adjacent pairs from index 0 up to the current unsorted
// boundary, swapping out-of-order pairs. The boundary shrinks by one after
// every pass because the largest remaining element settles into its final
// position. The sort stops once a pass completes without a swap, so an
// already-sorted sequence costs a single pass of len(s)-1 comparisons.
// Sequences of length 0 or 1 are sorted with zero comparisons.
func BubbleSort[T cmp.Ordered](s []T) uint64 {
	var comps uint64
	swapped := true
	for pass := 0; swapped; pass++ {
		swapped = false
		for i := 0; i < len(s)-1-pass; i++ {
			comps++
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
	}
	return comps
}
