package rf

import "errors"

// Sentinel errors for request-level validation failures. Callers wrap them with
// context and translate them with errors.Is at the transport boundary.
var (
	ErrInvalidLoad             = errors.New("invalid load")
	ErrInvalidFrequency        = errors.New("invalid frequency")
	ErrUnphysicalReflection    = errors.New("unphysical reflection coefficient")
	ErrDegenerateInterpolation = errors.New("degenerate interpolation")
	ErrInvalidPoints           = errors.New("invalid point count")
	ErrInvalidReflection       = errors.New("invalid reflection coefficient")

	errZeroDivisor = errors.New("division by zero")
)
