package fenwick

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/rangefold/internal/gridshape"
)

// Tree is a Fenwick tree over integers of type T.
type Tree[T constraints.Integer] struct {
	table []T // table[0] is unused and stays zero
}

// New returns an empty tree ready for Push.
func New[T constraints.Integer]() *Tree[T] {
	return &Tree[T]{table: make([]T, 1)}
}

// FromSlice builds a tree over a copy of src.
//
// Each slot adds its finished partial sum into its parent i + lsb(i).
// Complexity: O(n).
func FromSlice[T constraints.Integer](src []T) *Tree[T] {
	table := make([]T, len(src)+1)
	copy(table[1:], src)
	for i := 1; i < len(table); i++ {
		if p := i + gridshape.Lsb(i); p < len(table) {
			table[p] += table[i]
		}
	}

	return &Tree[T]{table: table}
}

// Len returns the number of elements.
func (t *Tree[T]) Len() int { return len(t.table) - 1 }

// Add adds delta to element i.
// Panics with an error wrapping ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(log n).
func (t *Tree[T]) Add(i int, delta T) {
	if i < 0 || i >= t.Len() {
		panic(fmt.Errorf("%w: Add(%d) over %d elements", ErrIndexOutOfRange, i, t.Len()))
	}
	for i++; i < len(t.table); i += gridshape.Lsb(i) {
		t.table[i] += delta
	}
}

// PrefixSum returns the sum of elements [0, i).
// Panics with an error wrapping ErrIndexOutOfRange unless 0 <= i <= Len().
// Complexity: O(log n).
func (t *Tree[T]) PrefixSum(i int) T {
	if i < 0 || i > t.Len() {
		panic(fmt.Errorf("%w: PrefixSum(%d) over %d elements", ErrIndexOutOfRange, i, t.Len()))
	}
	var s T
	for ; i > 0; i -= gridshape.Lsb(i) {
		s += t.table[i]
	}

	return s
}

// RangeSum returns the sum of elements [l, r).
// Panics with an error wrapping ErrInvalidRange when l > r.
func (t *Tree[T]) RangeSum(l, r int) T {
	if l > r {
		panic(fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, l, r))
	}

	return t.PrefixSum(r) - t.PrefixSum(l)
}

// Push appends x as the new last element.
//
// The new slot n covers (n - lsb(n), n]; it is x plus the slots n-1, n-2,
// n-4, … that tile the rest of that interval.
// Complexity: O(log n).
func (t *Tree[T]) Push(x T) {
	n := len(t.table)
	k := gridshape.Lsb(n)
	for d := 1; d != k; d <<= 1 {
		x += t.table[n-d]
	}
	t.table = append(t.table, x)
}

// UpperBound returns the largest i in [0, Len()] with PrefixSum(i) <= x.
//
// Requires every element to be non-negative. For signed T and x < 0 the
// result is 0.
// Complexity: O(log n).
func (t *Tree[T]) UpperBound(x T) int {
	n := t.Len()
	pos := 0
	var acc T
	for step := gridshape.FloorPow2(n); step > 0; step >>= 1 {
		if next := pos + step; next <= n && acc+t.table[next] <= x {
			pos = next
			acc += t.table[next]
		}
	}

	return pos
}

// Values reconstructs the element sequence.
// Complexity: O(n log n).
func (t *Tree[T]) Values() []T {
	out := make([]T, t.Len())
	for i := range out {
		out[i] = t.PrefixSum(i+1) - t.PrefixSum(i)
	}

	return out
}
