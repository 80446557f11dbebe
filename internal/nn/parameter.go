package nn

import (
	"github.com/born-ml/ann/internal/matrix"
)

// Parameter is a named trainable matrix of a network.
//
// Names follow the pattern "layer<l>.weight" and "layer<l>.bias", where l is
// the 1-based layer number.
type Parameter struct {
	name  string
	value *matrix.Matrix
}

// NewParameter creates a new parameter.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}
