package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/ann/internal/matrix"
	"gonum.org/v1/gonum/floats"
)

// SGD implements stochastic gradient descent without momentum.
//
// Example:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	if err != nil {
//	    return err
//	}
//	err = sgd.Step(weights, weightGrads)
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate, must be > 0
}

// NewSGD creates a new SGD optimizer.
//
// Returns an error wrapping matrix.ErrInvalidArgument if the learning rate is
// not a positive finite number.
func NewSGD(config SGDConfig) (*SGD, error) {
	if err := validateLR(config.LR); err != nil {
		return nil, err
	}
	return &SGD{lr: config.LR}, nil
}

// Step performs a single optimization step: params[i] -= lr * grads[i].
func (s *SGD) Step(params, grads []*matrix.Matrix) error {
	if len(params) != len(grads) {
		return fmt.Errorf("optim: %w: %d parameters but %d gradients",
			matrix.ErrInvalidArgument, len(params), len(grads))
	}

	// Validate everything before touching any parameter.
	for i := range params {
		if params[i] == nil || grads[i] == nil {
			return fmt.Errorf("optim: %w: nil parameter or gradient at %d", matrix.ErrInvalidArgument, i)
		}
		if !params[i].SameShape(grads[i]) {
			pr, pc := params[i].Dims()
			gr, gc := grads[i].Dims()
			return fmt.Errorf("optim: parameter %d: %w", i, &matrix.DimensionError{
				Op:    "sgd",
				Left:  [2]int{pr, pc},
				Right: [2]int{gr, gc},
			})
		}
	}

	for i := range params {
		floats.AddScaled(params[i].Raw(), -s.lr, grads[i].Raw())
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) error {
	if err := validateLR(lr); err != nil {
		return err
	}
	s.lr = lr
	return nil
}

func validateLR(lr float64) error {
	if !(lr > 0) || math.IsInf(lr, 1) {
		return fmt.Errorf("optim: %w: learning rate must be > 0, got %v", matrix.ErrInvalidArgument, lr)
	}
	return nil
}
