// Package numtheory collects the small number-theory helpers the range
// structures lean on: greatest common divisor, a smallest-prime-factor
// sieve with factorization, and arithmetic modulo 998244353.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rangefold/numtheory"
//
//	numtheory.GCD[uint32](12, 18) // 6
//
//	sv, err := numtheory.NewSieve(1000)
//	if err != nil {
//	  // handle ErrInvalidLimit
//	}
//	sv.Factorize(360) // [5 3 3 2 2 2]
//
//	x := numtheory.NewMod(3).Pow(10) // 59049 (mod 998244353)
//
// Performance:
//
//   - GCD:       O(log min(x, y))
//   - NewSieve:  O(L log log L) time, O(L) memory
//   - Factorize: O(number of prime factors)
package numtheory
