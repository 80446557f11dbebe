package nn

import (
	"fmt"

	"github.com/born-ml/ann/internal/matrix"
)

// Activations holds the intermediate values of one forward pass.
type Activations struct {
	// Z[l-1] is the weighted input z = W·a + b of layer l, for l = 1..L-1.
	Z []*matrix.Matrix
	// A[l] is the activation of layer l, for l = 0..L-1. A[0] is the input.
	A []*matrix.Matrix
}

// Output returns the activation of the output layer.
func (a *Activations) Output() *matrix.Matrix {
	return a.A[len(a.A)-1]
}

// FeedForward propagates x, a (InputSize, 1) column vector, through the
// network:
//
//	z[l] = W[l]·a[l-1] + b[l]
//	a[l] = σ(z[l])
//
// It has no side effects.
func (n *Network) FeedForward(x *matrix.Matrix) (*Activations, error) {
	if x == nil {
		return nil, fmt.Errorf("nn: %w: input must not be nil", ErrInvalidArgument)
	}

	act := &Activations{
		Z: make([]*matrix.Matrix, len(n.layers)),
		A: make([]*matrix.Matrix, len(n.layers)+1),
	}
	act.A[0] = x

	for i, lay := range n.layers {
		wa, err := lay.weight.Value().Mul(act.A[i])
		if err != nil {
			return nil, fmt.Errorf("nn: feedforward layer %d: %w", i+1, err)
		}
		z, err := wa.Add(lay.bias.Value())
		if err != nil {
			return nil, fmt.Errorf("nn: feedforward layer %d: %w", i+1, err)
		}
		act.Z[i] = z
		act.A[i+1] = Activation(z)
	}

	return act, nil
}

// Predict returns the output-layer activation for x.
func (n *Network) Predict(x *matrix.Matrix) (*matrix.Matrix, error) {
	act, err := n.FeedForward(x)
	if err != nil {
		return nil, err
	}
	return act.Output(), nil
}

// Cost returns the mean quadratic cost ½‖a - y‖² over the paired examples.
func (n *Network) Cost(xs, ys []*matrix.Matrix) (float64, error) {
	if len(xs) != len(ys) || len(xs) == 0 {
		return 0, fmt.Errorf("nn: %w: cost needs equal non-empty batches, got %d inputs and %d targets",
			ErrInvalidArgument, len(xs), len(ys))
	}

	var total float64
	for i := range xs {
		out, err := n.Predict(xs[i])
		if err != nil {
			return 0, fmt.Errorf("nn: example %d: %w", i, err)
		}
		c, err := QuadraticCost(out, ys[i])
		if err != nil {
			return 0, fmt.Errorf("nn: example %d: %w", i, err)
		}
		total += c
	}
	return total / float64(len(xs)), nil
}
