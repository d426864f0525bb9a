package numtheory

import (
	"fmt"
	"slices"
)

// Sieve is a smallest-prime-factor table over [0, Limit()).
//
// spf[x] holds the smallest prime dividing a composite x and stays 0 for
// 0, 1 and primes. The table is immutable after NewSieve.
type Sieve struct {
	spf []uint32
}

// NewSieve builds the smallest-prime-factor table for every value below limit.
//
// Only primes p with p*p < limit mark their multiples; every composite below
// limit has such a factor, so the remaining zero entries are exactly the primes
// (plus 0 and 1).
//
// Returns ErrInvalidLimit when limit < 0.
// Complexity: O(L log log L) time, O(L) memory.
func NewSieve(limit int) (*Sieve, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	spf := make([]uint32, limit)
	for p := 2; p*p < limit; p++ {
		if spf[p] != 0 {
			continue // composite
		}
		for i := p * p; i < limit; i += p {
			if spf[i] == 0 {
				spf[i] = uint32(p)
			}
		}
	}

	return &Sieve{spf: spf}, nil
}

// Limit returns the exclusive upper bound of the sieve.
func (s *Sieve) Limit() int { return len(s.spf) }

// IsPrime reports whether x is prime. Values outside [0, Limit()) report false.
func (s *Sieve) IsPrime(x int) bool {
	if x < 2 || x >= len(s.spf) {
		return false
	}

	return s.spf[x] == 0
}

// Factorize returns the prime factors of x in non-increasing order, each
// repeated by its multiplicity. Factorize(1) is empty.
//
// Panics with an error wrapping ErrZeroFactorization for x == 0 and
// ErrOutOfSieve for x >= Limit().
func (s *Sieve) Factorize(x uint32) []uint32 {
	if x == 0 {
		panic(ErrZeroFactorization)
	}
	if uint64(x) >= uint64(len(s.spf)) {
		panic(fmt.Errorf("%w: %d >= %d", ErrOutOfSieve, x, len(s.spf)))
	}
	var res []uint32
	for x > 1 {
		p := s.spf[x]
		if p == 0 {
			res = append(res, x)
			break
		}
		res = append(res, p)
		x /= p
	}
	slices.Reverse(res)

	return res
}
