package nn

import (
	"math"

	"github.com/born-ml/ann/internal/matrix"
)

// Sigmoid is the logistic function σ(t) = 1 / (1 + exp(-t)).
func Sigmoid(t float64) float64 {
	return 1 / (1 + math.Exp(-t))
}

// SigmoidPrime is the derivative of the logistic function,
// σ'(t) = σ(t)·(1 - σ(t)).
func SigmoidPrime(t float64) float64 {
	s := Sigmoid(t)
	return s * (1 - s)
}

// Activation applies σ element-wise to z.
//
// Example:
//
//	z, _ := matrix.ColumnVector(-1, 0, 1)
//	a := nn.Activation(z) // [0.269, 0.5, 0.731]
func Activation(z *matrix.Matrix) *matrix.Matrix {
	return z.Apply(Sigmoid)
}

// DerivativeActivation applies σ' element-wise to z.
func DerivativeActivation(z *matrix.Matrix) *matrix.Matrix {
	return z.Apply(SigmoidPrime)
}
