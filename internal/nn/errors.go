package nn

import "github.com/born-ml/ann/internal/matrix"

// Failure kinds shared with the matrix package.
var (
	ErrInvalidArgument   = matrix.ErrInvalidArgument
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrIndexOutOfRange   = matrix.ErrIndexOutOfRange
)
