// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/ann/internal/matrix"
)

// Matrix is a dense rows×cols matrix of float64 values.
type Matrix = matrix.Matrix

// DimensionError reports incompatible operand shapes.
type DimensionError = matrix.DimensionError

// IndexError reports an element access outside the matrix bounds.
type IndexError = matrix.IndexError

// Failure kinds.
var (
	ErrInvalidArgument   = matrix.ErrInvalidArgument
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrIndexOutOfRange   = matrix.ErrIndexOutOfRange
)

// New creates a zero-filled rows×cols matrix.
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// FromSlice creates a rows×cols matrix from row-major values.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// ColumnVector creates a len(values)×1 matrix.
//
// Example:
//
//	x, _ := matrix.ColumnVector(0.1, -0.4, 2.0) // 3×1 network input
func ColumnVector(values ...float64) (*Matrix, error) {
	return matrix.ColumnVector(values...)
}

// Hadamard returns the element-wise product of p and q.
func Hadamard(p, q *Matrix) (*Matrix, error) {
	return matrix.Hadamard(p, q)
}

// EqualApprox reports whether p and q have the same shape and all elements
// within tol of each other.
func EqualApprox(p, q *Matrix, tol float64) bool {
	return matrix.EqualApprox(p, q, tol)
}
