package segtree

import "errors"

var (
	// ErrEmptySource indicates New was given no leaves.
	ErrEmptySource = errors.New("segtree: source must have at least one element")

	// ErrIndexOutOfRange is wrapped by the panic value of Set/Get on a bad index.
	ErrIndexOutOfRange = errors.New("segtree: index out of range")

	// ErrInvalidRange is wrapped by the panic value of Fold on start > end or end > Len().
	ErrInvalidRange = errors.New("segtree: invalid range")
)
