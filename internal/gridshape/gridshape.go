// Package gridshape holds the rectangular-grid intake shared by the 2D
// structures: dimension measurement, jagged-row detection and deep copies.
package gridshape

// Measure returns the height and width of grid and the index of the first
// row whose length differs from row 0, or -1 when the grid is rectangular.
// A grid without rows measures 0×0.
//
// Complexity: O(H).
func Measure[T any](grid [][]T) (h, w, badRow int) {
	h = len(grid)
	if h == 0 {
		return 0, 0, -1
	}
	w = len(grid[0])
	for i, row := range grid {
		if len(row) != w {
			return h, w, i
		}
	}

	return h, w, -1
}

// Clone deep-copies a grid so callers can keep mutating their input.
// Complexity: O(H×W).
func Clone[T any](grid [][]T) [][]T {
	out := make([][]T, len(grid))
	for i, row := range grid {
		out[i] = make([]T, len(row))
		copy(out[i], row)
	}

	return out
}

// Lsb returns the value of the lowest set bit of i (i & -i).
// Lsb(0) == 0; the Fenwick walks never call it with 0.
func Lsb(i int) int {
	return i & -i
}

// FloorPow2 returns the largest power of two not exceeding n, or 0 for n <= 0.
func FloorPow2(n int) int {
	if n <= 0 {
		return 0
	}
	p := 1
	for p <= n>>1 {
		p <<= 1
	}

	return p
}
