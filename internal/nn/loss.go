package nn

import (
	"fmt"

	"github.com/born-ml/ann/internal/matrix"
	"gonum.org/v1/gonum/floats"
)

// QuadraticCost computes C = ½‖a - y‖² for one example.
func QuadraticCost(a, y *matrix.Matrix) (float64, error) {
	diff, err := GradientCostOutput(a, y)
	if err != nil {
		return 0, err
	}
	d := diff.Raw()
	return 0.5 * floats.Dot(d, d), nil
}

// GradientCostOutput returns ∂C/∂a = a - y, the gradient of the quadratic
// cost with respect to the output activation.
//
// Returns an error wrapping ErrDimensionMismatch if the target shape does
// not match the output shape.
func GradientCostOutput(a, y *matrix.Matrix) (*matrix.Matrix, error) {
	if a == nil || y == nil {
		return nil, fmt.Errorf("nn: %w: output and target must not be nil", ErrInvalidArgument)
	}
	if !a.SameShape(y) {
		ar, ac := a.Dims()
		yr, yc := y.Dims()
		return nil, &matrix.DimensionError{Op: "cost gradient", Left: [2]int{ar, ac}, Right: [2]int{yr, yc}}
	}
	return a.Sub(y)
}
