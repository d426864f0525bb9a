package numtheory

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of x and y by Euclid's algorithm.
// GCD(0, y) == y, so GCD(0, 0) == 0.
//
// Complexity: O(log min(x, y)).
func GCD[T constraints.Unsigned](x, y T) T {
	for x != 0 {
		x, y = y%x, x
	}

	return y
}

// LCM returns the least common multiple of x and y, or 0 when either is 0.
// The product wraps silently on overflow, like every fixed-width operation here.
func LCM[T constraints.Unsigned](x, y T) T {
	if x == 0 || y == 0 {
		return 0
	}

	return x / GCD(x, y) * y
}
