package wavelet

import "errors"

var (
	// ErrBitWidth indicates a bit width outside [1, 32].
	ErrBitWidth = errors.New("wavelet: bit width must be in [1, 32]")

	// ErrValueTooWide indicates an element that does not fit the bit width.
	ErrValueTooWide = errors.New("wavelet: value does not fit the bit width")

	// ErrIndexOutOfRange is wrapped by the panic value of Access and Rank.
	ErrIndexOutOfRange = errors.New("wavelet: index out of range")

	// ErrInvalidRange is wrapped by the panic value of the range queries.
	ErrInvalidRange = errors.New("wavelet: invalid range")
)
