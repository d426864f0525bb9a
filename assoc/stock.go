package assoc

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/rangefold/numtheory"
)

// Number is the set of element types Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is addition. Integer overflow wraps.
type Sum[T Number] struct{}

// Op returns lhs + rhs.
func (Sum[T]) Op(lhs, rhs T) T { return lhs + rhs }

// OpAssignRight adds rhs into acc.
func (Sum[T]) OpAssignRight(acc *T, rhs T) { *acc += rhs }

// OpAssignLeft adds lhs into acc; addition commutes so order is irrelevant.
func (Sum[T]) OpAssignLeft(acc *T, lhs T) { *acc += lhs }

// Min keeps the smaller operand. Ties keep lhs.
type Min[T constraints.Ordered] struct{}

// Op returns min(lhs, rhs).
func (Min[T]) Op(lhs, rhs T) T {
	if rhs < lhs {
		return rhs
	}

	return lhs
}

// Max keeps the larger operand. Ties keep lhs.
type Max[T constraints.Ordered] struct{}

// Op returns max(lhs, rhs).
func (Max[T]) Op(lhs, rhs T) T {
	if rhs > lhs {
		return rhs
	}

	return lhs
}

// GCD is the greatest-common-divisor semigroup over unsigned integers.
type GCD[T constraints.Unsigned] struct{}

// Op returns gcd(lhs, rhs).
func (GCD[T]) Op(lhs, rhs T) T { return numtheory.GCD(lhs, rhs) }

// Concat is string concatenation, the canonical non-commutative semigroup.
type Concat struct{}

// Op returns lhs + rhs.
func (Concat) Op(lhs, rhs string) string { return lhs + rhs }

// OpAssignRight appends rhs to acc.
func (Concat) OpAssignRight(acc *string, rhs string) { *acc += rhs }

// OpAssignLeft prepends lhs to acc.
func (Concat) OpAssignLeft(acc *string, lhs string) { *acc = lhs + *acc }
