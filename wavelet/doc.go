// Package wavelet provides a wavelet matrix over fixed-width unsigned
// integers: positional access, rank, select, range quantile and range
// frequency, each in O(bits) rank queries.
//
// 🚀 What is it?
//
//	One bit row per bit position, most significant first. Row l records
//	bit (bits-1-l) of every element in the order produced by the rows
//	above it; the elements are then stably partitioned, zeros first, for
//	the next row. Each row keeps a popcount directory so rank is O(1).
//
// ⚙️ Usage:
//
//	m, err := wavelet.New([]uint32{5, 4, 5, 5, 2, 1, 5, 6, 1, 3, 5, 0}, 3)
//	if err != nil {
//	  // ErrBitWidth or ErrValueTooWide
//	}
//	m.Rank(5, 7)          // 4: occurrences of 5 in [0, 7)
//	m.Quantile(0, 12, 0)  // 0: smallest element
//	m.RangeFreq(2, 9, 2, 6) // elements of [2, 9) within [2, 6)
package wavelet
