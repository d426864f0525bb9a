// Package segtree provides a generic, array-backed segment tree over any
// associative operation: point assignment and half-open range fold, both in
// O(log n).
//
// 🚀 What is it?
//
//	The tree stores 2n slots. Leaves live in [n, 2n); node i in [1, n)
//	holds Op(node 2i, node 2i+1); slot 0 is unused. There are no node
//	objects and no pointers, only index arithmetic (i/2, 2i, 2i+1).
//
// ✨ Key properties:
//   - Op must be associative but need NOT be commutative: Fold(s, e)
//     equals Op applied left to right over leaves s..e-1.
//   - No identity element is required. Fold over an empty range reports
//     ok == false instead of returning an identity.
//   - Works for any n >= 1, not only powers of two.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/rangefold/assoc"
//	  "github.com/katalvlaran/rangefold/segtree"
//	)
//
//	st, err := segtree.New[int](assoc.Min[int]{}, []int{5, 3, 8, 1})
//	if err != nil {
//	  // handle ErrEmptySource
//	}
//	st.Set(3, 9)
//	m, ok := st.Fold(1, 4) // 3, true
//
// Errors & panics:
//
//   - New returns ErrEmptySource for an empty input.
//   - Set/Get panic with an error wrapping ErrIndexOutOfRange.
//   - Fold panics with an error wrapping ErrInvalidRange when start > end
//     or the range leaves [0, n].
//
// Performance:
//
//   - New:  O(n) time, 2n slots
//   - Set:  O(log n)
//   - Fold: O(log n)
//
// The structure is not safe for concurrent mutation; serialize access when
// sharing an instance across goroutines.
package segtree
