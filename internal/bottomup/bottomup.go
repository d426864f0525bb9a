// Package bottomup implements the iterative, bottom-up walks over an
// implicit binary tree stored in a flat slice of 2n slots: leaves live in
// [n, 2n), node i has children 2i and 2i+1, slot 0 is unused.
//
// Both segtree and segtree2d fold through these kernels so the
// order-preserving two-pointer logic exists exactly once.
package bottomup

import "github.com/katalvlaran/rangefold/assoc"

// Pull recomputes node i from its children: table[i] = Op(table[2i], table[2i+1]).
func Pull[T any](op func(lhs, rhs T) T, table []T, i int) {
	table[i] = op(table[2*i], table[2*i+1])
}

// Build recomputes every internal node n-1 down to 1.
// Complexity: O(n).
func Build[T any](op func(lhs, rhs T) T, table []T, n int) {
	for i := n - 1; i >= 1; i-- {
		Pull(op, table, i)
	}
}

// Fold folds the leaves [start, end) of a tree with n leaves, reading node
// values through at. Requires 0 <= start < end <= n.
//
// The first and last leaves seed the left and right accumulators; interior
// nodes join the left accumulator from the right and the right accumulator
// from the left, so the result equals the left-to-right reduction of the
// leaves for any associative operation.
//
// Complexity: O(log n) calls to at.
func Fold[T any](acc assoc.Accumulators[T], n, start, end int, at func(node int) T) T {
	start += n
	end += n
	if start+1 == end {
		return at(start)
	}
	left := at(start)
	start++
	end--
	right := at(end)
	for start != end {
		if start%2 == 1 {
			acc.AssignRight(&left, at(start))
			start++
		}
		if end%2 == 1 {
			end--
			acc.AssignLeft(&right, at(end))
		}
		start /= 2
		end /= 2
	}

	return acc.Op(left, right)
}

// FoldSlice is Fold over a table slice.
func FoldSlice[T any](acc assoc.Accumulators[T], table []T, n, start, end int) T {
	return Fold(acc, n, start, end, func(node int) T { return table[node] })
}

// Nodes lists, left to right, the nodes Fold visits for [start, end).
// Requires 0 <= start < end <= n.
func Nodes(n, start, end int) []int {
	start += n
	end += n
	if start+1 == end {
		return []int{start}
	}
	left := []int{start}
	start++
	end--
	right := []int{end}
	for start != end {
		if start%2 == 1 {
			left = append(left, start)
			start++
		}
		if end%2 == 1 {
			end--
			right = append(right, end)
		}
		start /= 2
		end /= 2
	}
	for i := len(right) - 1; i >= 0; i-- {
		left = append(left, right[i])
	}

	return left
}

// Leaves returns the half-open leaf range [lo, hi) covered by node v in a
// tree with n leaves. Only meaningful for nodes returned by Nodes.
func Leaves(n, v int) (lo, hi int) {
	lo, hi = v, v
	for lo < n {
		lo *= 2
		hi = 2*hi + 1
	}

	return lo - n, hi - n + 1
}
