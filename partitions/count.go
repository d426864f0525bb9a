package partitions

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/rangefold/numtheory"
)

// CountTable returns p(0), …, p(n-1), the number of partitions of each
// index, by the pentagonal number recurrence
//
//	p(i) = Σ_{k≥1} (-1)^(k+1) · (p(i - k(3k-1)/2) + p(i - k(3k+1)/2)).
//
// Values wrap like T once they exceed its range. n <= 0 yields an empty table.
func CountTable[T constraints.Signed](n int) []T {
	if n <= 0 {
		return []T{}
	}
	a := make([]T, n)
	a[0] = 1
	for i := 1; i < n; i++ {
		for k := 1; ; k++ {
			d1 := k * (3*k - 1) / 2
			if d1 > i {
				break
			}
			term := a[i-d1]
			if d2 := k * (3*k + 1) / 2; d2 <= i {
				term += a[i-d2]
			}
			if k%2 == 1 {
				a[i] += term
			} else {
				a[i] -= term
			}
		}
	}

	return a
}

// CountTableMod is CountTable modulo 998244353.
func CountTableMod(n int) []numtheory.Mod998244353 {
	if n <= 0 {
		return []numtheory.Mod998244353{}
	}
	a := make([]numtheory.Mod998244353, n)
	a[0] = 1
	for i := 1; i < n; i++ {
		for k := 1; ; k++ {
			d1 := k * (3*k - 1) / 2
			if d1 > i {
				break
			}
			term := a[i-d1]
			if d2 := k * (3*k + 1) / 2; d2 <= i {
				term = term.Add(a[i-d2])
			}
			if k%2 == 1 {
				a[i] = a[i].Add(term)
			} else {
				a[i] = a[i].Sub(term)
			}
		}
	}

	return a
}
