// Package fenwick2d provides a two-dimensional Fenwick tree over integer
// values: point add, rectangle prefix sums, rectangle sums and a
// row-restricted upper-bound search, each in O(log H · log W).
//
// The layout is the 1D Fenwick layout applied along both axes: an
// (H+1)×(W+1) table whose slot (i, j) holds the sum of the source block
// (i - lsb(i), i] × (j - lsb(j), j], 1-based.
//
// ⚙️ Usage:
//
//	ft, err := fenwick2d.FromSlice([][]uint32{{1, 2}, {3, 4}})
//	if err != nil {
//	  // ErrJaggedGrid
//	}
//	ft.Add(0, 1, 10)
//	s := ft.DoublePrefixSum(2, 2)           // 20
//	j := ft.HorizontalUpperBound(2, 5)      // 1: column prefix sums are 4, 20
//
// HorizontalUpperBound assumes non-negative elements; otherwise its result
// is unspecified.
package fenwick2d
