package numtheory

import "errors"

var (
	// ErrInvalidLimit indicates a negative sieve limit.
	ErrInvalidLimit = errors.New("numtheory: sieve limit must be non-negative")

	// ErrZeroFactorization is the panic value (wrapped) when Factorize(0) is called.
	ErrZeroFactorization = errors.New("numtheory: zero has no prime factorization")

	// ErrOutOfSieve is the panic value (wrapped) when a number beyond the sieve limit is factorized.
	ErrOutOfSieve = errors.New("numtheory: value outside sieve range")

	// ErrNotInvertible is the panic value when the inverse of zero is requested.
	ErrNotInvertible = errors.New("numtheory: zero is not invertible")
)
