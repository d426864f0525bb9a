package assoc

// Semigroup is an associative binary operation on T.
//
// Implementations must be pure and deterministic: the structures invoke Op
// many times per query and rely on Op(Op(a,b),c) == Op(a,Op(b,c)).
type Semigroup[T any] interface {
	Op(lhs, rhs T) T
}

// RightAssigner is implemented by semigroups that can fold a value into an
// accumulator from the right in place: *acc = Op(*acc, rhs).
type RightAssigner[T any] interface {
	OpAssignRight(acc *T, rhs T)
}

// LeftAssigner is implemented by semigroups that can fold a value into an
// accumulator from the left in place: *acc = Op(lhs, *acc).
type LeftAssigner[T any] interface {
	OpAssignLeft(acc *T, lhs T)
}

// Func adapts an ordinary function to the Semigroup interface.
// The caller guarantees associativity.
type Func[T any] func(lhs, rhs T) T

// Op calls f(lhs, rhs).
func (f Func[T]) Op(lhs, rhs T) T { return f(lhs, rhs) }

// Accumulators bundles a semigroup with its resolved directional variants.
// It is what segtree and friends store internally.
type Accumulators[T any] struct {
	Op         func(lhs, rhs T) T
	AssignLeft func(acc *T, lhs T)
	// AssignRight folds rhs into acc on the right.
	AssignRight func(acc *T, rhs T)
}

// Resolve inspects s once and returns its Accumulators. Missing directional
// variants fall back to the base operation.
func Resolve[T any](s Semigroup[T]) Accumulators[T] {
	acc := Accumulators[T]{Op: s.Op}
	if r, ok := s.(RightAssigner[T]); ok {
		acc.AssignRight = r.OpAssignRight
	} else {
		acc.AssignRight = func(a *T, rhs T) { *a = s.Op(*a, rhs) }
	}
	if l, ok := s.(LeftAssigner[T]); ok {
		acc.AssignLeft = l.OpAssignLeft
	} else {
		acc.AssignLeft = func(a *T, lhs T) { *a = s.Op(lhs, *a) }
	}

	return acc
}

// Reduce folds xs left to right with s. It reports false for an empty slice.
// It is the brute-force reference every structure in this module agrees with.
func Reduce[T any](s Semigroup[T], xs []T) (T, bool) {
	var zero T
	if len(xs) == 0 {
		return zero, false
	}
	res := xs[0]
	for _, x := range xs[1:] {
		res = s.Op(res, x)
	}

	return res, true
}
