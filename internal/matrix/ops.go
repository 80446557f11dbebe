package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// dense wraps the backing slice of m in a gonum view. No data is copied, so
// the view must only be read unless it wraps a freshly allocated result.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

// T returns the transpose of m: a cols×rows matrix with entry (c,r) equal to
// m(r,c).
func (m *Matrix) T() *Matrix {
	out := newUnchecked(m.cols, m.rows)
	out.dense().Copy(m.dense().T())
	return out
}

// Scale returns m with every element multiplied by d.
func (m *Matrix) Scale(d float64) *Matrix {
	out := newUnchecked(m.rows, m.cols)
	floats.ScaleTo(out.data, d, m.data)
	return out
}

// Mul returns the matrix product m·q.
//
// Requires m.Cols() == q.Rows(); the result has shape (m.Rows(), q.Cols()).
// Entry (i,j) is the sum over k of m(i,k)·q(k,j).
func (m *Matrix) Mul(q *Matrix) (*Matrix, error) {
	if m.cols != q.rows {
		return nil, mismatch("mul", m, q)
	}
	out := newUnchecked(m.rows, q.cols)
	out.dense().Mul(m.dense(), q.dense())
	return out, nil
}

// Add returns the element-wise sum m+q. Shapes must be identical.
func (m *Matrix) Add(q *Matrix) (*Matrix, error) {
	if !m.SameShape(q) {
		return nil, mismatch("add", m, q)
	}
	out := newUnchecked(m.rows, m.cols)
	floats.AddTo(out.data, m.data, q.data)
	return out, nil
}

// Sub returns the element-wise difference m-q. Shapes must be identical.
func (m *Matrix) Sub(q *Matrix) (*Matrix, error) {
	if !m.SameShape(q) {
		return nil, mismatch("sub", m, q)
	}
	out := newUnchecked(m.rows, m.cols)
	floats.SubTo(out.data, m.data, q.data)
	return out, nil
}
