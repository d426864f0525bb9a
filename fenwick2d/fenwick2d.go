package fenwick2d

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/rangefold/internal/gridshape"
)

// Tree is a 2D Fenwick tree over integers of type T.
type Tree[T constraints.Integer] struct {
	h, w  int
	table [][]T // (h+1)×(w+1); row 0 and column 0 stay zero
}

// FromSlice builds a tree over grid.
//
// A grid without rows is accepted and yields a 0×0 tree. Returns
// ErrJaggedGrid if row lengths differ.
// Complexity: O(H×W).
func FromSlice[T constraints.Integer](grid [][]T) (*Tree[T], error) {
	h, w, bad := gridshape.Measure(grid)
	if bad >= 0 {
		return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrJaggedGrid, bad, len(grid[bad]), w)
	}
	table := make([][]T, h+1)
	for i := range table {
		table[i] = make([]T, w+1)
	}
	// Horizontal pass: each row becomes a 1D Fenwick table.
	for i := 1; i <= h; i++ {
		row := table[i]
		copy(row[1:], grid[i-1])
		for j := 1; j <= w; j++ {
			if p := j + gridshape.Lsb(j); p <= w {
				row[p] += row[j]
			}
		}
	}
	// Vertical pass over the finished rows.
	for i := 1; i <= h; i++ {
		p := i + gridshape.Lsb(i)
		if p > h {
			continue
		}
		for j := 1; j <= w; j++ {
			table[p][j] += table[i][j]
		}
	}

	return &Tree[T]{h: h, w: w, table: table}, nil
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T constraints.Integer](grid [][]T) *Tree[T] {
	t, err := FromSlice(grid)
	if err != nil {
		panic(err)
	}

	return t
}

// Height returns the number of rows.
func (t *Tree[T]) Height() int { return t.h }

// Width returns the number of columns.
func (t *Tree[T]) Width() int { return t.w }

// Add adds delta to cell (i, j).
// Complexity: O(log H · log W).
func (t *Tree[T]) Add(i, j int, delta T) {
	if i < 0 || i >= t.h || j < 0 || j >= t.w {
		panic(fmt.Errorf("%w: Add(%d, %d) on %d×%d", ErrIndexOutOfRange, i, j, t.h, t.w))
	}
	for i++; i <= t.h; i += gridshape.Lsb(i) {
		row := t.table[i]
		for k := j + 1; k <= t.w; k += gridshape.Lsb(k) {
			row[k] += delta
		}
	}
}

// DoublePrefixSum returns the sum over [0, i) × [0, j).
// Complexity: O(log H · log W).
func (t *Tree[T]) DoublePrefixSum(i, j int) T {
	t.checkPrefix(i, j)
	var s T
	for ; i > 0; i -= gridshape.Lsb(i) {
		row := t.table[i]
		for k := j; k > 0; k -= gridshape.Lsb(k) {
			s += row[k]
		}
	}

	return s
}

// RectSum returns the sum over [top, bottom) × [left, right).
func (t *Tree[T]) RectSum(top, bottom, left, right int) T {
	if top > bottom || left > right {
		panic(fmt.Errorf("%w: [%d, %d) × [%d, %d)", ErrInvalidRange, top, bottom, left, right))
	}

	return t.DoublePrefixSum(bottom, right) - t.DoublePrefixSum(top, right) -
		t.DoublePrefixSum(bottom, left) + t.DoublePrefixSum(top, left)
}

// HorizontalUpperBound returns the largest column j in [0, Width()] such
// that DoublePrefixSum(row, j) <= x.
//
// The descent walks columns by decreasing powers of two; each candidate
// slot is collapsed over the row prefix by rowPrefixCell.
// Complexity: O(log W · log H).
func (t *Tree[T]) HorizontalUpperBound(row int, x T) int {
	t.checkPrefix(row, 0)
	pos := 0
	var acc T
	for step := gridshape.FloorPow2(t.w); step > 0; step >>= 1 {
		next := pos + step
		if next > t.w {
			continue
		}
		if cand := acc + t.rowPrefixCell(row, next); cand <= x {
			pos = next
			acc = cand
		}
	}

	return pos
}

// ToGrid reconstructs the element grid.
// Complexity: O(H·W·log H·log W).
func (t *Tree[T]) ToGrid() [][]T {
	out := make([][]T, t.h)
	for i := range out {
		out[i] = make([]T, t.w)
		for j := range out[i] {
			out[i][j] = t.RectSum(i, i+1, j, j+1)
		}
	}

	return out
}

// rowPrefixCell sums column slot j over the row prefix [0, i): the 1D
// Fenwick slot j of the column-wise collapsed rows.
func (t *Tree[T]) rowPrefixCell(i, j int) T {
	var s T
	for ; i > 0; i -= gridshape.Lsb(i) {
		s += t.table[i][j]
	}

	return s
}

func (t *Tree[T]) checkPrefix(i, j int) {
	if i < 0 || i > t.h || j < 0 || j > t.w {
		panic(fmt.Errorf("%w: prefix (%d, %d) on %d×%d", ErrIndexOutOfRange, i, j, t.h, t.w))
	}
}
