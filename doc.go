// Package rangefold is a toolkit of implicit, array-backed range-query
// structures over caller-supplied associative operations.
//
// 🚀 What is rangefold?
//
//	A small family of flat-slice trees with no node objects and no pointers:
//		• segtree:   point assignment + range fold, any associative op
//		• segtree2d: the same over a grid, rectangle fold
//		• fenwick:   point add, prefix sum, append, prefix upper bound
//		• fenwick2d: the same over a grid, row-restricted upper bound
//		• wavelet:   access, rank, select, quantile, range frequency
//		• doubling:  binary lifting over a weighted functional graph
//		• partitions, numtheory: enumeration, counting and modular helpers
//
// ✨ Why choose rangefold?
//
//   - Operations need only be associative. Order is preserved, so string
//     concatenation, matrix products and affine maps fold correctly.
//   - No identity element required: empty folds report ok == false.
//   - Generic over element types; integer families use
//     golang.org/x/exp/constraints type sets.
//   - Randomized differential suites compare every structure with a
//     brute-force model; cmd/rangestress runs them at scale.
//
// Layout:
//
//	assoc/      — Semigroup capability, directional assigners, stock ops
//	segtree/    — 1D segment tree
//	segtree2d/  — 2D segment tree and its documented fold order
//	fenwick/    — 1D Fenwick tree
//	fenwick2d/  — 2D Fenwick tree
//	wavelet/    — wavelet matrix
//	doubling/   — doubling table
//	partitions/ — integer partitions
//	numtheory/  — gcd, sieve, arithmetic modulo 998244353
//	cmd/rangestress/ — CLI driving the differential suites
//	examples/   — runnable scenarios (go run examples/<file>.go)
//
// Quick ASCII example (segtree over 4 leaves):
//
//	        [1]
//	      /     \
//	    [2]     [3]
//	   /  \    /  \
//	 [4] [5] [6] [7]   ← leaves a0 a1 a2 a3
//
//	Set(2, x) rewrites leaf 6, then nodes 3 and 1.
//	Fold(1, 4) = a1 · (a2 · a3), order kept.
//
//	go get github.com/katalvlaran/rangefold
package rangefold
