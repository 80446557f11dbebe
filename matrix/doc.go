// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API of the dense matrix engine.
//
// # Overview
//
// A Matrix is a fixed-shape rows×cols array of float64 values. All
// arithmetic is non-mutating and validates shapes before computing:
//   - T: transpose
//   - Scale: multiplication by a scalar
//   - Mul: matrix product, requires p.Cols() == q.Rows()
//   - Add, Sub: element-wise, identical shapes
//   - Hadamard: element-wise product, identical shapes
//
// # Basic Usage
//
//	p, _ := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	q := p.T()         // 3×2
//	r, err := p.Mul(q) // 2×2
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//	    // shapes did not line up
//	}
//
// # Errors
//
// Every failure wraps one of ErrInvalidArgument, ErrDimensionMismatch or
// ErrIndexOutOfRange. Shape and index details are available through
// *DimensionError and *IndexError with errors.As.
package matrix
