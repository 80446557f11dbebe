package nn

import (
	"github.com/born-ml/ann/internal/matrix"
)

// Normal returns a rows×cols matrix whose entries are independent draws
// from N(mean, variance).
func Normal(rows, cols int, mean, variance float64, sampler Sampler) (*matrix.Matrix, error) {
	m, err := matrix.New(rows, cols)
	if err != nil {
		return nil, err
	}
	err = m.Fill(func() (float64, error) {
		return sampler.NextNormal(mean, variance)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
