package fenwick2d

import "errors"

var (
	// ErrJaggedGrid indicates rows of unequal length.
	ErrJaggedGrid = errors.New("fenwick2d: grid rows must have equal length")

	// ErrIndexOutOfRange is wrapped by the panic value of Add and the prefix queries.
	ErrIndexOutOfRange = errors.New("fenwick2d: index out of range")

	// ErrInvalidRange is wrapped by the panic value of RectSum on a reversed range.
	ErrInvalidRange = errors.New("fenwick2d: invalid range")
)
