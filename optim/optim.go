// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the gradient descent update rule.
//
// Only plain SGD is available:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	err = sgd.Step(params, grads) // params[i] -= 0.01 * grads[i]
package optim

import (
	"github.com/born-ml/ann/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// SGD represents the plain stochastic gradient descent optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) (*SGD, error) {
	return optim.NewSGD(config)
}
