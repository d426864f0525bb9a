// Package segtree2d provides a two-dimensional segment tree: a segment tree
// over rows whose nodes are themselves segment trees over columns. It
// supports point assignment and rectangular fold in O(log H · log W).
//
// 🚀 What is it?
//
//	A (2H)×(2W) table. Leaf rows [H, 2H) are ordinary 1D segment trees
//	along the columns. Internal row i in [1, H) is the element-wise Op of
//	rows 2i and 2i+1 for every column slot, so each stored cell (R, C)
//	summarizes the block rows(R) × cols(C) in row-major order.
//
// ✨ Fold order:
//
//	The row range is split into canonical row nodes (top to bottom) and
//	the column range into canonical column nodes (left to right). Fold
//	visits, for each row node, each column node, and contributes the
//	row-major fold of that block. When every row node is a single row,
//	which always holds for a commutative Op, this is plain row-major order.
//	CanonicalOrder lists the exact cell sequence.
//
// ⚙️ Usage:
//
//	grid := [][]int{{1, 2, 3}, {4, 5, 6}}
//	t, err := segtree2d.New[int](assoc.Sum[int]{}, grid)
//	if err != nil {
//	  // ErrEmptyGrid or ErrJaggedGrid
//	}
//	t.Update(1, 2, 10)
//	s, ok := t.Fold(0, 2, 1, 3) // 2+3+5+10, true
//
// Performance:
//
//   - New:    O(H·W) time, 4·H·W slots
//   - Update: O(log H · log W)
//   - Fold:   O(log H · log W)
package segtree2d
