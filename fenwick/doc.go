// Package fenwick provides a Fenwick (binary indexed) tree over integer
// values: point add, prefix and range sums, append, and an upper-bound
// search on prefix sums, all in O(log n).
//
// 🚀 What is it?
//
//	A 1-based array of n+1 slots (slot 0 unused). Slot i holds the sum of
//	the source elements (i - lsb(i), i], where lsb(i) = i & -i is the
//	lowest set bit. Walking i += lsb(i) visits every slot covering i;
//	walking i -= lsb(i) decomposes a prefix into disjoint slots.
//
// ✨ Key properties:
//   - Generic over constraints.Integer; arithmetic wraps on overflow just
//     like the underlying Go type (uint32 is the reference instantiation).
//   - Push appends in O(log n) without rebuilding.
//   - UpperBound requires non-negative elements so prefix sums are
//     monotone; with negative elements its result is unspecified.
//
// ⚙️ Usage:
//
//	ft := fenwick.FromSlice([]uint32{1, 2, 3, 4})
//	ft.Add(1, 5)
//	s := ft.PrefixSum(4) // 15
//	i := ft.UpperBound(8) // 2: prefix sums are 1, 8, 11, 15
//
// Performance:
//
//   - FromSlice: O(n)
//   - Add, PrefixSum, RangeSum, Push, UpperBound: O(log n)
//   - Values: O(n log n)
package fenwick
