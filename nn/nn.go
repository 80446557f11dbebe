// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/ann/internal/nn"
	"github.com/born-ml/ann/matrix"
)

// Network is a fully connected feedforward network.
type Network = nn.Network

// Config holds the collaborators of a Network.
type Config = nn.Config

// TrainConfig holds the hyperparameters of a training run.
type TrainConfig = nn.TrainConfig

// Activations holds the intermediate values of one forward pass.
type Activations = nn.Activations

// Gradients holds the cost gradient for every non-input layer.
type Gradients = nn.Gradients

// Parameter is a named trainable matrix.
type Parameter = nn.Parameter

// Sampler draws normally distributed values.
type Sampler = nn.Sampler

// Permuter returns its input in a uniformly random order.
type Permuter = nn.Permuter

// Observer receives training progress.
type Observer = nn.Observer

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc = nn.ObserverFunc

// EpochStats summarizes one finished training epoch.
type EpochStats = nn.EpochStats

// Failure kinds, identical to those of package matrix.
var (
	ErrInvalidArgument   = nn.ErrInvalidArgument
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrIndexOutOfRange   = nn.ErrIndexOutOfRange
)

// New creates a network with the given layer sizes.
//
// Example:
//
//	net, err := nn.New([]int{3, 4, 2}, nn.DefaultConfig())
func New(layerSizes []int, config Config) (*Network, error) {
	return nn.New(layerSizes, config)
}

// DefaultConfig returns a configuration with a clock-seeded random source.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// DefaultTrainConfig returns batch size 10, learning rate 0.01 and 2 epochs.
func DefaultTrainConfig() TrainConfig {
	return nn.DefaultTrainConfig()
}

// Sigmoid is the logistic function.
func Sigmoid(t float64) float64 {
	return nn.Sigmoid(t)
}

// SigmoidPrime is the derivative of the logistic function.
func SigmoidPrime(t float64) float64 {
	return nn.SigmoidPrime(t)
}

// Activation applies the sigmoid element-wise.
func Activation(z *matrix.Matrix) *matrix.Matrix {
	return nn.Activation(z)
}

// DerivativeActivation applies the sigmoid derivative element-wise.
func DerivativeActivation(z *matrix.Matrix) *matrix.Matrix {
	return nn.DerivativeActivation(z)
}

// QuadraticCost computes ½‖a - y‖² for one example.
func QuadraticCost(a, y *matrix.Matrix) (float64, error) {
	return nn.QuadraticCost(a, y)
}
