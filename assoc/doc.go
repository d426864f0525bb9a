// Package assoc defines the associative-operation capability shared by the
// range structures (segtree, segtree2d, doubling).
//
// 🚀 What is a semigroup here?
//
//	A value type T together with a binary operation Op that is associative:
//	  Op(Op(a, b), c) == Op(a, Op(b, c))
//	The operation need NOT be commutative and no identity element is
//	required. Structures that fold an empty range therefore report
//	"no value" instead of returning an identity.
//
// ✨ Capability, not inheritance:
//   - Semigroup[T] is the only required method set.
//   - RightAssigner / LeftAssigner are optional in-place variants that a
//     semigroup may implement for speed; Accumulators resolves them once so
//     hot loops never type-assert.
//   - Func adapts a plain function value.
//
// Stock semigroups: Sum, Min, Max, GCD, Concat.
package assoc
