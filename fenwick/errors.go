package fenwick

import "errors"

var (
	// ErrIndexOutOfRange is wrapped by the panic value of Add/PrefixSum on a bad index.
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")

	// ErrInvalidRange is wrapped by the panic value of RangeSum when l > r.
	ErrInvalidRange = errors.New("fenwick: invalid range")
)
