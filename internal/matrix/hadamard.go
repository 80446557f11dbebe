package matrix

import "gonum.org/v1/gonum/floats"

// Hadamard returns the element-wise product of p and q.
//
// Shapes must be identical; entry (r,c) of the result is p(r,c)·q(r,c).
func Hadamard(p, q *Matrix) (*Matrix, error) {
	if !p.SameShape(q) {
		return nil, mismatch("hadamard", p, q)
	}
	out := newUnchecked(p.rows, p.cols)
	floats.MulTo(out.data, p.data, q.data)
	return out, nil
}
