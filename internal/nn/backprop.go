package nn

import (
	"fmt"

	"github.com/born-ml/ann/internal/matrix"
	"gonum.org/v1/gonum/floats"
)

// Gradients holds ∂C/∂W and ∂C/∂b for every non-input layer.
//
// Weights[l-1] has the shape of the weight matrix of layer l and Biases[l-1]
// the shape of its bias vector.
type Gradients struct {
	Weights []*matrix.Matrix
	Biases  []*matrix.Matrix
}

// SingletonGradient computes the gradient of C = ½‖a[L-1] - y‖² for a single
// example by backpropagation:
//
//	δ[L-1] = (a[L-1] - y) ⊙ σ'(z[L-1])             (BP1)
//	δ[l]   = (W[l+1]ᵀ · δ[l+1]) ⊙ σ'(z[l])          (BP2)
//	dW[l]  = δ[l] · a[l-1]ᵀ                         (BP3)
//	db[l]  = δ[l]                                   (BP4)
//
// Returns an error wrapping ErrDimensionMismatch if y does not have the
// output layer's shape.
func (n *Network) SingletonGradient(x, y *matrix.Matrix) (*Gradients, error) {
	act, err := n.FeedForward(x)
	if err != nil {
		return nil, err
	}

	last := len(n.layers) - 1
	deltas := make([]*matrix.Matrix, len(n.layers))

	costGrad, err := GradientCostOutput(act.Output(), y)
	if err != nil {
		return nil, fmt.Errorf("nn: output error: %w", err)
	}
	deltas[last], err = matrix.Hadamard(costGrad, DerivativeActivation(act.Z[last]))
	if err != nil {
		return nil, fmt.Errorf("nn: output error: %w", err)
	}

	for i := last - 1; i >= 0; i-- {
		back, err := n.layers[i+1].weight.Value().T().Mul(deltas[i+1])
		if err != nil {
			return nil, fmt.Errorf("nn: backpropagate layer %d: %w", i+1, err)
		}
		deltas[i], err = matrix.Hadamard(back, DerivativeActivation(act.Z[i]))
		if err != nil {
			return nil, fmt.Errorf("nn: backpropagate layer %d: %w", i+1, err)
		}
	}

	grads := &Gradients{
		Weights: make([]*matrix.Matrix, len(n.layers)),
		Biases:  deltas,
	}
	for i, delta := range deltas {
		grads.Weights[i], err = delta.Mul(act.A[i].T())
		if err != nil {
			return nil, fmt.Errorf("nn: weight gradient layer %d: %w", i+1, err)
		}
	}

	return grads, nil
}

// MiniBatchGradient returns the arithmetic mean of SingletonGradient over
// the paired examples xs[i], ys[i].
//
// Returns an error wrapping ErrInvalidArgument if the batch is empty or the
// lists differ in length.
func (n *Network) MiniBatchGradient(xs, ys []*matrix.Matrix) (*Gradients, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("nn: %w: batch has %d inputs but %d targets", ErrInvalidArgument, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("nn: %w: empty batch", ErrInvalidArgument)
	}

	// The first singleton gradient is freshly allocated and becomes the
	// accumulator.
	sum, err := n.SingletonGradient(xs[0], ys[0])
	if err != nil {
		return nil, fmt.Errorf("nn: example 0: %w", err)
	}

	for k := 1; k < len(xs); k++ {
		g, err := n.SingletonGradient(xs[k], ys[k])
		if err != nil {
			return nil, fmt.Errorf("nn: example %d: %w", k, err)
		}
		for i := range sum.Weights {
			floats.Add(sum.Weights[i].Raw(), g.Weights[i].Raw())
			floats.Add(sum.Biases[i].Raw(), g.Biases[i].Raw())
		}
	}

	scale := 1 / float64(len(xs))
	for i := range sum.Weights {
		floats.Scale(scale, sum.Weights[i].Raw())
		floats.Scale(scale, sum.Biases[i].Raw())
	}

	return sum, nil
}
