// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the feedforward network trainer.
//
// # Overview
//
// This package contains:
//   - Network: fully connected sigmoid network with N(0,1) initialization
//   - FeedForward / Predict: forward propagation
//   - SingletonGradient / MiniBatchGradient: backpropagation for the
//     quadratic cost
//   - AdjustLearningParameters: the SGD update, W -= eta·dW, b -= eta·db
//   - RunSingleEpoch / RunAllEpochs / Train: shuffled mini-batch epochs
//   - Activation / DerivativeActivation: element-wise σ and σ'
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ann/matrix"
//	    "github.com/born-ml/ann/nn"
//	)
//
//	func main() {
//	    net, err := nn.New([]int{3, 4, 2}, nn.Config{Seed: 42})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // trainX[i] is 3×1, trainY[i] is 2×1
//	    err = net.Train(trainX, trainY, nn.TrainConfig{
//	        BatchSize:    10,
//	        LearningRate: 0.01,
//	        Epochs:       2,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.Predict(x)
//	}
//
// # Layer Indexing
//
// Layer 0 is the input and has no parameters. Gradients.Weights[l-1],
// Gradients.Biases[l-1] and Activations.Z[l-1] belong to layer l, while
// Activations.A[l] is the activation of layer l with A[0] the input.
//
// # Progress
//
// Set Config.Observer (or call SetObserver) to receive an EpochStats value
// after every epoch:
//
//	net.SetObserver(nn.ObserverFunc(func(s nn.EpochStats) {
//	    log.Printf("epoch %d/%d", s.Epoch, s.Epochs)
//	}))
package nn
