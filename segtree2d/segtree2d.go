package segtree2d

import (
	"fmt"

	"github.com/katalvlaran/rangefold/assoc"
	"github.com/katalvlaran/rangefold/internal/bottomup"
	"github.com/katalvlaran/rangefold/internal/gridshape"
)

// Tree is a 2D segment tree over a height × width grid.
type Tree[T any] struct {
	height, width int
	table         [][]T
	acc           assoc.Accumulators[T]
}

// New builds a tree over a copy of grid.
//
// Returns ErrJaggedGrid if any row length differs from the first, otherwise
// ErrEmptyGrid if grid has no rows or no columns.
// Complexity: O(H×W) time and memory.
func New[T any](op assoc.Semigroup[T], grid [][]T) (*Tree[T], error) {
	h, w, bad := gridshape.Measure(grid)
	if bad >= 0 {
		return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrJaggedGrid, bad, len(grid[bad]), w)
	}
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}
	t := &Tree[T]{
		height: h,
		width:  w,
		table:  make([][]T, 2*h),
		acc:    assoc.Resolve(op),
	}
	for i := range t.table {
		t.table[i] = make([]T, 2*w)
	}
	// Leaf rows: one horizontal segment tree each.
	for i, src := range grid {
		row := t.table[h+i]
		copy(row[w:], src)
		bottomup.Build(t.acc.Op, row, w)
	}
	// Internal rows: element-wise over every occupied column slot.
	for i := h - 1; i >= 1; i-- {
		t.pullRow(i, 1, 2*w)
	}

	return t, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](op assoc.Semigroup[T], grid [][]T) *Tree[T] {
	t, err := New(op, grid)
	if err != nil {
		panic(err)
	}

	return t
}

// Height returns the number of grid rows.
func (t *Tree[T]) Height() int { return t.height }

// Width returns the number of grid columns.
func (t *Tree[T]) Width() int { return t.width }

// Get returns cell (i, j).
func (t *Tree[T]) Get(i, j int) T {
	t.checkCell(i, j)

	return t.table[t.height+i][t.width+j]
}

// Update assigns v to cell (i, j).
//
// The leaf row is repaired horizontally first; then every ancestor row
// recomputes, vertically, the column slots on the path from the leaf
// column up to slot 1.
// Complexity: O(log H · log W).
func (t *Tree[T]) Update(i, j int, v T) {
	t.checkCell(i, j)
	r, c := t.height+i, t.width+j
	row := t.table[r]
	row[c] = v
	for k := c; k > 1; {
		k /= 2
		bottomup.Pull(t.acc.Op, row, k)
	}
	for r > 1 {
		r /= 2
		for k := c; k >= 1; k /= 2 {
			t.table[r][k] = t.acc.Op(t.table[2*r][k], t.table[2*r+1][k])
		}
	}
}

// FoldHorizontally folds columns [start, end) of physical row node row,
// which must lie in [1, 2·Height()). Leaf row i is node Height()+i.
// Returns (zero, false) for an empty column range.
func (t *Tree[T]) FoldHorizontally(row, start, end int) (T, bool) {
	var zero T
	if row < 1 || row >= 2*t.height {
		panic(fmt.Errorf("%w: row node %d not in [1, %d)", ErrIndexOutOfRange, row, 2*t.height))
	}
	t.checkCols(start, end)
	if start == end {
		return zero, false
	}

	return bottomup.FoldSlice(t.acc, t.table[row], t.width, start, end), true
}

// Fold folds the rectangle [rowStart, rowEnd) × [colStart, colEnd) in the
// order described by CanonicalOrder. Returns (zero, false) if either range
// is empty.
//
// Panics with an error wrapping ErrInvalidRange on a malformed range.
// Complexity: O(log H · log W).
func (t *Tree[T]) Fold(rowStart, rowEnd, colStart, colEnd int) (T, bool) {
	var zero T
	if rowStart < 0 || rowStart > rowEnd || rowEnd > t.height {
		panic(fmt.Errorf("%w: rows [%d, %d) over %d", ErrInvalidRange, rowStart, rowEnd, t.height))
	}
	t.checkCols(colStart, colEnd)
	if rowStart == rowEnd || colStart == colEnd {
		return zero, false
	}
	at := func(node int) T {
		return bottomup.FoldSlice(t.acc, t.table[node], t.width, colStart, colEnd)
	}

	return bottomup.Fold(t.acc, t.height, rowStart, rowEnd, at), true
}

// ToGrid returns a copy of the logical grid.
func (t *Tree[T]) ToGrid() [][]T {
	out := make([][]T, t.height)
	for i := range out {
		out[i] = make([]T, t.width)
		copy(out[i], t.table[t.height+i][t.width:])
	}

	return out
}

// pullRow recomputes row i from rows 2i and 2i+1 over column slots [lo, hi).
func (t *Tree[T]) pullRow(i, lo, hi int) {
	dst, top, bottom := t.table[i], t.table[2*i], t.table[2*i+1]
	for j := lo; j < hi; j++ {
		dst[j] = t.acc.Op(top[j], bottom[j])
	}
}

func (t *Tree[T]) checkCell(i, j int) {
	if i < 0 || i >= t.height || j < 0 || j >= t.width {
		panic(fmt.Errorf("%w: (%d, %d) outside %d×%d", ErrIndexOutOfRange, i, j, t.height, t.width))
	}
}

func (t *Tree[T]) checkCols(start, end int) {
	if start < 0 || start > end || end > t.width {
		panic(fmt.Errorf("%w: columns [%d, %d) over %d", ErrInvalidRange, start, end, t.width))
	}
}
