// Package matrix implements the dense float64 matrix used by the trainer.
//
// A Matrix has a fixed shape chosen at construction and row-major backing
// storage. Arithmetic never mutates its operands: every operation validates
// shapes first and returns a freshly allocated result. Element mutation is
// only possible through Set.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense rows×cols matrix of float64 values.
type Matrix struct {
	rows int
	cols int
	data []float64 // row-major, len == rows*cols
}

// New creates a zero-filled rows×cols matrix.
//
// Returns an error wrapping ErrInvalidArgument if either dimension is not
// positive.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: %w: dimensions must be positive, got %dx%d", ErrInvalidArgument, rows, cols)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// FromSlice creates a rows×cols matrix from row-major values.
//
// The values are copied; later changes to data do not affect the matrix.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix: %w: %dx%d needs %d values, got %d",
			ErrInvalidArgument, rows, cols, rows*cols, len(data))
	}
	copy(m.data, data)
	return m, nil
}

// ColumnVector creates a len(values)×1 matrix.
func ColumnVector(values ...float64) (*Matrix, error) {
	return FromSlice(len(values), 1, values)
}

// newUnchecked allocates a result whose dimensions are already known to be
// valid because they come from existing matrices.
func newUnchecked(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, err
	}
	return m.data[row*m.cols+col], nil
}

// Set assigns value to the element at (row, col).
func (m *Matrix) Set(row, col int, value float64) error {
	if err := m.checkIndex(row, col); err != nil {
		return err
	}
	m.data[row*m.cols+col] = value
	return nil
}

func (m *Matrix) checkIndex(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return &IndexError{Row: row, Col: col, Rows: m.rows, Cols: m.cols}
	}
	return nil
}

// Values returns a row-major copy of the elements.
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: m.Values()}
}

// Raw exposes the row-major backing slice.
//
// Writes through the returned slice mutate the matrix. It exists for the
// in-place parameter update of the trainer and must not be retained.
func (m *Matrix) Raw() []float64 {
	return m.data
}

// Fill sets every element to the value produced by next.
//
// Elements are visited in row-major order, and the first error returned by
// next aborts the fill.
func (m *Matrix) Fill(next func() (float64, error)) error {
	for i := range m.data {
		v, err := next()
		if err != nil {
			return err
		}
		m.data[i] = v
	}
	return nil
}

// Apply returns a new matrix with f applied to every element.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	out := newUnchecked(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// EqualApprox reports whether p and q have the same shape and every pair of
// elements differs by at most tol.
func EqualApprox(p, q *Matrix, tol float64) bool {
	if !p.SameShape(q) {
		return false
	}
	for i := range p.data {
		if math.Abs(p.data[i]-q.data[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprint(&b, m.data[r*m.cols:(r+1)*m.cols])
	}
	return b.String()
}
