// Package nn implements a fully connected feedforward network trained with
// mini-batch stochastic gradient descent and hand-derived backpropagation.
//
// The network uses the logistic sigmoid on every layer and the quadratic
// cost C = ½‖a - y‖². Layers are numbered like the usual mathematical
// notation: layer 0 is the input, layer L-1 the output. Layer 0 has no
// weights, so every per-layer slice in this package stores layer l at index
// l-1 (see Gradients and Activations).
//
// Example:
//
//	net, err := nn.New([]int{3, 4, 2}, nn.Config{Seed: 1})
//	if err != nil {
//	    return err
//	}
//	err = net.Train(trainX, trainY, nn.DefaultTrainConfig())
package nn

import (
	"fmt"

	"github.com/born-ml/ann/internal/matrix"
	"github.com/born-ml/ann/internal/random"
)

// layer holds the parameters of one non-input layer.
type layer struct {
	weight *Parameter // [size(l), size(l-1)]
	bias   *Parameter // [size(l), 1]
}

// Network is a fully connected feedforward network.
//
// A Network is not safe for concurrent use. Its parameters are mutated only
// by AdjustLearningParameters.
type Network struct {
	layerSizes []int
	layers     []layer // layers[l-1] is layer l

	sampler  Sampler
	permuter Permuter
	observer Observer

	// Network-owned copies of the bound training set, reordered every epoch.
	trainX []*matrix.Matrix
	trainY []*matrix.Matrix
}

// New creates a network with the given layer sizes.
//
// layerSizes[0] is the input size and layerSizes[len-1] the output size.
// Every weight and bias entry is drawn independently from N(0, 1) using the
// configured sampler.
//
// Returns an error wrapping ErrInvalidArgument if fewer than two layers are
// given or any size is not positive.
func New(layerSizes []int, config Config) (*Network, error) {
	if len(layerSizes) < 2 {
		return nil, fmt.Errorf("nn: %w: need at least 2 layer sizes, got %v", ErrInvalidArgument, layerSizes)
	}
	for l, size := range layerSizes {
		if size <= 0 {
			return nil, fmt.Errorf("nn: %w: layer %d has size %d", ErrInvalidArgument, l, size)
		}
	}

	n := &Network{
		layerSizes: append([]int(nil), layerSizes...),
		sampler:    config.Sampler,
		permuter:   config.Permuter,
		observer:   config.Observer,
	}
	if n.sampler == nil || n.permuter == nil {
		src := random.NewSource(config.Seed)
		if n.sampler == nil {
			n.sampler = random.NewGaussian(src)
		}
		if n.permuter == nil {
			n.permuter = random.NewPermuter(src)
		}
	}

	n.layers = make([]layer, len(layerSizes)-1)
	for l := 1; l < len(layerSizes); l++ {
		w, err := Normal(layerSizes[l], layerSizes[l-1], 0, 1, n.sampler)
		if err != nil {
			return nil, fmt.Errorf("nn: init layer %d weight: %w", l, err)
		}
		b, err := Normal(layerSizes[l], 1, 0, 1, n.sampler)
		if err != nil {
			return nil, fmt.Errorf("nn: init layer %d bias: %w", l, err)
		}
		n.layers[l-1] = layer{
			weight: NewParameter(fmt.Sprintf("layer%d.weight", l), w),
			bias:   NewParameter(fmt.Sprintf("layer%d.bias", l), b),
		}
	}

	return n, nil
}

// LayerSizes returns a copy of the layer sizes.
func (n *Network) LayerSizes() []int {
	return append([]int(nil), n.layerSizes...)
}

// NumLayers returns L, the number of layers including the input layer.
func (n *Network) NumLayers() int {
	return len(n.layerSizes)
}

// InputSize returns the size of layer 0.
func (n *Network) InputSize() int {
	return n.layerSizes[0]
}

// OutputSize returns the size of layer L-1.
func (n *Network) OutputSize() int {
	return n.layerSizes[len(n.layerSizes)-1]
}

// Weight returns a copy of the weight matrix of layer l, 1 <= l <= L-1.
func (n *Network) Weight(l int) (*matrix.Matrix, error) {
	lay, err := n.layerAt(l)
	if err != nil {
		return nil, err
	}
	return lay.weight.Value().Clone(), nil
}

// Bias returns a copy of the bias vector of layer l, 1 <= l <= L-1.
func (n *Network) Bias(l int) (*matrix.Matrix, error) {
	lay, err := n.layerAt(l)
	if err != nil {
		return nil, err
	}
	return lay.bias.Value().Clone(), nil
}

func (n *Network) layerAt(l int) (layer, error) {
	if l < 1 || l >= len(n.layerSizes) {
		return layer{}, fmt.Errorf("nn: %w: layer %d has no parameters (valid: 1..%d)",
			ErrIndexOutOfRange, l, len(n.layerSizes)-1)
	}
	return n.layers[l-1], nil
}

// Parameters returns a snapshot of every parameter in layer order:
// layer1.weight, layer1.bias, layer2.weight, ...
//
// The returned matrices are copies; modifying them does not affect the
// network.
func (n *Network) Parameters() []*Parameter {
	params := make([]*Parameter, 0, 2*len(n.layers))
	for _, lay := range n.layers {
		params = append(params,
			NewParameter(lay.weight.Name(), lay.weight.Value().Clone()),
			NewParameter(lay.bias.Name(), lay.bias.Value().Clone()),
		)
	}
	return params
}

// SetObserver replaces the progress observer. Nil disables reporting.
func (n *Network) SetObserver(o Observer) {
	n.observer = o
}

// TrainingSetSize returns the number of bound training examples.
func (n *Network) TrainingSetSize() int {
	return len(n.trainX)
}
