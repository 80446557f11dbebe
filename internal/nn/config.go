package nn

import (
	"fmt"
	"math"
)

// Sampler draws normally distributed values. *random.Gaussian satisfies it.
type Sampler interface {
	NextNormal(mean, variance float64) (float64, error)
}

// Permuter returns its input in a uniformly random order. *random.Permuter
// satisfies it.
type Permuter interface {
	Permute(indices []int) []int
}

// Config holds the collaborators of a Network.
//
// Nil collaborators are created on demand from a single random source
// seeded with Seed; Seed < 0 seeds from the clock.
type Config struct {
	Sampler  Sampler  // Weight and bias initialization
	Permuter Permuter // Training set shuffling
	Observer Observer // Epoch progress, nil disables reporting
	Seed     int64
}

// DefaultConfig returns a configuration with a clock-seeded random source
// and no observer.
func DefaultConfig() Config {
	return Config{Seed: -1}
}

// TrainConfig holds the hyperparameters of a training run.
type TrainConfig struct {
	BatchSize    int     // Examples per mini-batch
	LearningRate float64 // SGD step size (eta)
	Epochs       int     // Full passes over the training set
}

// DefaultTrainConfig returns batch size 10, learning rate 0.01 and 2 epochs.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		BatchSize:    10,
		LearningRate: 0.01,
		Epochs:       2,
	}
}

// Validate checks that every hyperparameter is positive.
func (c TrainConfig) Validate() error {
	if c.BatchSize <= 0 || !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 1) || c.Epochs <= 0 {
		return fmt.Errorf("nn: %w: invalid hyperparameters: batch size = %d, eta = %v, epochs = %d",
			ErrInvalidArgument, c.BatchSize, c.LearningRate, c.Epochs)
	}
	return nil
}
