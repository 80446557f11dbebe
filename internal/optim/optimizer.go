// Package optim implements the parameter update rule of the trainer.
//
// Only plain stochastic gradient descent is provided:
//
//	param = param - lr * gradient
//
// Parameters are updated in place; gradients are never modified.
package optim

import "github.com/born-ml/ann/internal/matrix"

// Optimizer applies gradient updates to a list of parameters.
type Optimizer interface {
	// Step updates params[i] in place using grads[i].
	//
	// The lists must have equal length and pairwise identical shapes; on
	// error no parameter has been modified.
	Step(params, grads []*matrix.Matrix) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
