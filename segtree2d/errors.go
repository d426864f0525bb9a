package segtree2d

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("segtree2d: grid must have at least one row and one column")

	// ErrJaggedGrid indicates rows of unequal length.
	ErrJaggedGrid = errors.New("segtree2d: grid rows must have equal length")

	// ErrIndexOutOfRange is wrapped by the panic value of Get/Update/FoldHorizontally.
	ErrIndexOutOfRange = errors.New("segtree2d: index out of range")

	// ErrInvalidRange is wrapped by the panic value of Fold on a malformed range.
	ErrInvalidRange = errors.New("segtree2d: invalid range")
)
