package search

import "cmp"

// BinarySearchBound looks for target in sorted and reports how many probes
// it took. When target is present, bound is target itself. Otherwise bound
// is the smallest element greater than target that the descent probed, or
// the element at the final bottom index when no probe was larger. ok is
// false when target is greater than every element and no bound exists.
//
// sorted must be in ascending order. That is not checked, and the result
// for unsorted input is meaningless.
func BinarySearchBound[T cmp.Ordered](sorted []T, target T) (iterations int, bound T, ok bool) {
	bottom, top := 0, len(sorted)-1
	for bottom <= top {
		iterations++
		mid := int(uint(bottom+top) >> 1)
		switch v := sorted[mid]; {
		case v < target:
			bottom = mid + 1
		case v > target:
			top = mid - 1
			// each later candidate is tighter than the one before it
			bound, ok = v, true
		default:
			return iterations, v, true
		}
	}
	if !ok && bottom < len(sorted) {
		bound, ok = sorted[bottom], true
	}
	return iterations, bound, ok
}
