package matrix

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by this module wraps exactly one of
// them, so callers can classify failures with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// DimensionError reports incompatible operand shapes.
type DimensionError struct {
	Op    string // Operation that rejected the operands (e.g. "mul", "add")
	Left  [2]int // Shape of the left operand as {rows, cols}
	Right [2]int // Shape of the right operand as {rows, cols}
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %v: [%d,%d] vs [%d,%d]",
		e.Op, ErrDimensionMismatch, e.Left[0], e.Left[1], e.Right[0], e.Right[1])
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// IndexError reports an element access outside the matrix bounds.
type IndexError struct {
	Row, Col   int
	Rows, Cols int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) not in [0,%d)x[0,%d)", ErrIndexOutOfRange, e.Row, e.Col, e.Rows, e.Cols)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func mismatch(op string, p, q *Matrix) error {
	return &DimensionError{Op: op, Left: [2]int{p.rows, p.cols}, Right: [2]int{q.rows, q.cols}}
}
