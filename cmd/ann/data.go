package main

import (
	"github.com/born-ml/ann/matrix"
	"github.com/born-ml/ann/random"
)

// synthetic fabricates random training pairs with N(0,1) entries.
type synthetic struct {
	g       *random.Gaussian
	inputs  int
	outputs int
}

func newSynthetic(g *random.Gaussian, inputs, outputs int) *synthetic {
	return &synthetic{g: g, inputs: inputs, outputs: outputs}
}

// Examples returns count input vectors and count target vectors.
func (s *synthetic) Examples(count int) (xs, ys []*matrix.Matrix, err error) {
	xs = make([]*matrix.Matrix, count)
	ys = make([]*matrix.Matrix, count)
	for i := 0; i < count; i++ {
		if xs[i], err = normalMatrix(s.g, s.inputs, 1); err != nil {
			return nil, nil, err
		}
		if ys[i], err = normalMatrix(s.g, s.outputs, 1); err != nil {
			return nil, nil, err
		}
	}
	return xs, ys, nil
}

func normalMatrix(g *random.Gaussian, rows, cols int) (*matrix.Matrix, error) {
	m, err := matrix.New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := m.Fill(func() (float64, error) { return g.NextNormal(0, 1) }); err != nil {
		return nil, err
	}
	return m, nil
}
