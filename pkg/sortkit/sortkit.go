// Package sortkit provides ordering routines for slices:
// sorted-sequence search and straight insertion sorting,
// with pluggable comparison for any element type.
//
// Every routine is a total, synchronous and deterministic function.
// Nothing here spawns goroutines, keeps global state or touches I/O.
package sortkit

import (
	"cmp"

	"go.llib.dev/ordkit/pkg/compare"
)

// Search will look up target in vs using the natural ordering of T.
// It expects vs to be sorted in ascending order.
func Search[T cmp.Ordered](vs []T, target T) (int, bool) {
	return SearchFunc(vs, target, cmp.Compare[T])
}

// SearchComparable will look up target in vs ordered by the Compare method of T.
// It expects vs to be sorted in ascending order.
func SearchComparable[T compare.Interface[T]](vs []T, target T) (int, bool) {
	return SearchFunc(vs, target, compare.Comparables[T])
}

// SearchFunc will look up target in vs by bisecting the sequence,
// using O(log n) calls to cmp.
//
// SearchFunc expects vs to be sorted in ascending order under cmp.
// This precondition is not checked, as checking would cost the linear scan
// the bisection exists to avoid; the result on an unsorted sequence is undefined.
//
// When the target is present, SearchFunc returns its index and true.
// With duplicate elements any matching index may be returned,
// though the same input always yields the same index.
// When the target is absent, SearchFunc returns false,
// and the index where target could be inserted to keep vs sorted.
// An empty sequence reports (0, false).
//
// SearchFunc never modifies vs.
func SearchFunc[T any](vs []T, target T, cmp compare.Func[T]) (int, bool) {
	lo, hi := 0, len(vs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) // (lo+hi)/2 without overflow
		switch c := cmp(vs[mid], target); {
		case compare.IsLess(c):
			lo = mid + 1
		case compare.IsGreater(c):
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

// --------------------------------------------------------------------------------- //

// Sort will order vs in place ascending by the natural ordering of T.
func Sort[T cmp.Ordered](vs []T) {
	SortFunc(vs, cmp.Compare[T])
}

// SortComparable will order vs in place ascending by the Compare method of T.
func SortComparable[T compare.Interface[T]](vs []T) {
	SortFunc(vs, compare.Comparables[T])
}

// SortFunc will order vs in place into ascending order under cmp,
// using the straight insertion method:
// the sorted prefix grows one element at a time,
// each unprocessed element is held aside while the strictly greater prefix
// elements shift right, then it drops into the gap.
//
// The sort is stable. Shifting only past strictly greater elements means
// equal elements never trade places, so their original relative order survives.
// The element multiset is preserved and no auxiliary slice is allocated.
//
// SortFunc costs O(n²) comparisons in the worst case,
// but adapts to presorted input: an already sorted vs costs
// exactly len(vs)-1 comparisons and performs no writes.
// An empty or single-element vs performs no comparison at all.
func SortFunc[T any](vs []T, cmp compare.Func[T]) {
	for i := 1; i < len(vs); i++ {
		held := vs[i]
		j := i
		for 0 < j && compare.IsGreater(cmp(vs[j-1], held)) {
			vs[j] = vs[j-1]
			j--
		}
		if j != i {
			vs[j] = held
		}
	}
}

// --------------------------------------------------------------------------------- //

// IsSorted reports whether vs is in ascending order by the natural ordering of T.
func IsSorted[T cmp.Ordered](vs []T) bool {
	return IsSortedFunc(vs, cmp.Compare[T])
}

// IsSortedFunc reports whether vs is in ascending order under cmp.
func IsSortedFunc[T any](vs []T, cmp compare.Func[T]) bool {
	for i := 1; i < len(vs); i++ {
		if compare.IsGreater(cmp(vs[i-1], vs[i])) {
			return false
		}
	}
	return true
}
