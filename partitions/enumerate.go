package partitions

import (
	"iter"
	"slices"
)

// Iterator yields the partitions of n one at a time, largest first.
// The zero value is exhausted.
type Iterator struct {
	next []int
	done bool
}

// NewIterator returns an iterator over the partitions of n. For n == 0 it
// yields the empty partition once; for n < 0 it yields nothing.
func NewIterator(n int) *Iterator {
	switch {
	case n < 0:
		return &Iterator{done: true}
	case n == 0:
		return &Iterator{next: []int{}}
	default:
		return &Iterator{next: []int{n}}
	}
}

// Next returns the next partition and true, or nil and false once
// exhausted. The returned slice is owned by the caller.
func (it *Iterator) Next() ([]int, bool) {
	if it.done || it.next == nil {
		return nil, false
	}
	cur := it.next
	it.next = successor(cur)
	if it.next == nil {
		it.done = true
	}

	return slices.Clone(cur), true
}

// All returns every partition of n in reverse lexicographic order.
// Each yielded slice is freshly allocated.
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		it := NewIterator(n)
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// successor returns the partition after p in reverse lexicographic order,
// or nil if p is all ones.
//
// The last part greater than one is lowered by one; it and every part
// after it are then regrouped greedily into parts of that lowered size.
func successor(p []int) []int {
	pos := len(p) - 1
	for pos >= 0 && p[pos] == 1 {
		pos--
	}
	if pos < 0 {
		return nil
	}
	lim := p[pos] - 1
	rest := len(p) - pos // lowered part's lost unit plus the trailing ones
	q, r := rest/lim, rest%lim
	out := make([]int, 0, pos+q+2)
	out = append(out, p[:pos]...)
	for i := 0; i <= q; i++ {
		out = append(out, lim)
	}
	if r > 0 {
		out = append(out, r)
	}

	return out
}
