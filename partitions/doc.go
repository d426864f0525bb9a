// Package partitions enumerates and counts integer partitions.
//
// ✨ Key features:
//   - All(n): every partition of n as a range-over-func sequence, in
//     reverse lexicographic order from [n] down to [1 1 … 1].
//   - Iterator: the same sequence in pull style.
//   - CountTable / CountTableMod: p(0) … p(n-1) by Euler's pentagonal
//     number recurrence, over signed integers or modulo 998244353.
//   - Conjugate: transpose of the Young diagram.
//   - HookLengthProduct: product of all hook lengths modulo 998244353, so
//     n!/HookLengthProduct(λ) is the number of standard Young tableaux.
//
// ⚙️ Usage:
//
//	for p := range partitions.All(4) {
//	  fmt.Println(p) // [4] [3 1] [2 2] [2 1 1] [1 1 1 1]
//	}
//
// Performance:
//
//   - All, Iterator: O(n) per partition
//   - CountTable:    O(n·√n)
package partitions
