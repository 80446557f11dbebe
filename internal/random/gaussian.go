package random

import (
	"fmt"
	"math"

	"github.com/born-ml/ann/internal/matrix"
)

// Gaussian draws normally distributed samples from a uniform Source using
// the Box–Muller transform.
type Gaussian struct {
	src Source
}

// NewGaussian creates a Gaussian sampler consuming src.
func NewGaussian(src Source) *Gaussian {
	return &Gaussian{src: src}
}

// NextNormal returns one sample from N(mean, variance).
//
// Two uniforms u1, u2 are drawn from (0, 1] and combined as
//
//	z = sqrt(-2 ln u1) * sin(2π u2)
//	x = mean + sqrt(variance) * z
//
// Returns an error wrapping matrix.ErrInvalidArgument if variance is
// negative.
func (g *Gaussian) NextNormal(mean, variance float64) (float64, error) {
	if variance < 0 || math.IsNaN(variance) {
		return 0, fmt.Errorf("random: %w: variance must be >= 0, got %v", matrix.ErrInvalidArgument, variance)
	}

	// Float64 is in [0,1); flipping it keeps u1 away from zero for the log.
	u1 := 1 - g.src.Float64()
	u2 := 1 - g.src.Float64()

	z := math.Sqrt(-2*math.Log(u1)) * math.Sin(2*math.Pi*u2)
	return mean + math.Sqrt(variance)*z, nil
}
