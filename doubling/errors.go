package doubling

import "errors"

var (
	// ErrEmptySteps indicates New was given no nodes.
	ErrEmptySteps = errors.New("doubling: steps must not be empty")

	// ErrStepOutOfRange indicates a step whose Next is not a node index.
	ErrStepOutOfRange = errors.New("doubling: step target out of range")

	// ErrIndexOutOfRange is wrapped by the panic value of Find on a bad start.
	ErrIndexOutOfRange = errors.New("doubling: index out of range")
)
