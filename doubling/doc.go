// Package doubling provides a binary-lifting (doubling) table over a
// functional graph whose edges carry values of an associative operation.
//
// Level k of the table stores, for every node, where 2^k steps lead and the
// fold of the edge values along the way. Find then walks from a start node
// in decreasing powers of two to locate the first position at which a
// monotone predicate turns true.
//
// ⚙️ Usage:
//
//	steps := []doubling.Step[int]{{Next: 1, Value: 1}, {Next: 2, Value: 1}, {Next: 2, Value: 0}}
//	tbl, err := doubling.New[int](assoc.Sum[int]{}, steps)
//	if err != nil {
//	  // ErrEmptySteps or ErrStepOutOfRange
//	}
//	dist, end, acc := tbl.Find(0, 0, func(pos, acc int) bool { return pos == 2 })
//	// dist == 2, end == 2, acc == 2
//
// Performance:
//
//   - New:  O(n log n) time and memory
//   - Find: O(log n) predicate calls
package doubling
