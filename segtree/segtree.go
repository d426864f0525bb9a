package segtree

import (
	"fmt"

	"github.com/katalvlaran/rangefold/assoc"
	"github.com/katalvlaran/rangefold/internal/bottomup"
)

// Tree is a segment tree over values of type T combined by an associative operation.
type Tree[T any] struct {
	n     int
	table []T
	acc   assoc.Accumulators[T]
}

// New builds a tree whose leaves are a copy of src.
//
// Leaves are copied into [n, 2n), then nodes n-1 down to 1 are computed
// from their children.
//
// Returns ErrEmptySource if len(src) == 0.
// Complexity: O(n) time and memory.
func New[T any](op assoc.Semigroup[T], src []T) (*Tree[T], error) {
	n := len(src)
	if n == 0 {
		return nil, ErrEmptySource
	}
	t := &Tree[T]{
		n:     n,
		table: make([]T, 2*n),
		acc:   assoc.Resolve(op),
	}
	copy(t.table[n:], src)
	bottomup.Build(t.acc.Op, t.table, n)

	return t, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](op assoc.Semigroup[T], src []T) *Tree[T] {
	t, err := New(op, src)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of leaves.
func (t *Tree[T]) Len() int { return t.n }

// Get returns leaf i.
func (t *Tree[T]) Get(i int) T {
	t.checkIndex(i)

	return t.table[t.n+i]
}

// Set assigns v to leaf i and recomputes its ancestors up to the root.
// Complexity: O(log n).
func (t *Tree[T]) Set(i int, v T) {
	t.checkIndex(i)
	i += t.n
	t.table[i] = v
	for i > 1 {
		i /= 2
		bottomup.Pull(t.acc.Op, t.table, i)
	}
}

// Fold returns the left-to-right fold of leaves [start, end) and true, or
// the zero value and false when the range is empty.
//
// Panics with an error wrapping ErrInvalidRange unless 0 <= start <= end <= Len().
// Complexity: O(log n).
func (t *Tree[T]) Fold(start, end int) (T, bool) {
	var zero T
	if start < 0 || start > end || end > t.n {
		panic(fmt.Errorf("%w: [%d, %d) over %d leaves", ErrInvalidRange, start, end, t.n))
	}
	if start == end {
		return zero, false
	}

	return bottomup.FoldSlice(t.acc, t.table, t.n, start, end), true
}

// FoldAll folds every leaf. A tree always has at least one leaf.
func (t *Tree[T]) FoldAll() T {
	v, _ := t.Fold(0, t.n)

	return v
}

// Values returns a copy of the leaves in order.
func (t *Tree[T]) Values() []T {
	out := make([]T, t.n)
	copy(out, t.table[t.n:])

	return out
}

func (t *Tree[T]) checkIndex(i int) {
	if i < 0 || i >= t.n {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, t.n))
	}
}
