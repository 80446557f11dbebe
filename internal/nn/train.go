package nn

import (
	"fmt"
	"time"

	"github.com/born-ml/ann/internal/matrix"
	"github.com/born-ml/ann/internal/optim"
	"github.com/born-ml/ann/internal/random"
)

// AdjustLearningParameters applies one gradient descent step to every layer:
//
//	W[l] ← W[l] - eta·dW[l]
//	b[l] ← b[l] - eta·db[l]
//
// dW and db use the Gradients layout (index l-1 is layer l) and must cover
// all L-1 layers. The update is all-or-nothing: on error no parameter has
// changed. This is the only method that mutates the parameters.
func (n *Network) AdjustLearningParameters(eta float64, dW, db []*matrix.Matrix) error {
	if len(dW) != len(db) {
		return fmt.Errorf("nn: %w: %d weight gradients but %d bias gradients", ErrInvalidArgument, len(dW), len(db))
	}
	if len(dW) != len(n.layers) {
		return fmt.Errorf("nn: %w: got gradients for %d layers, network has %d",
			ErrInvalidArgument, len(dW), len(n.layers))
	}

	sgd, err := optim.NewSGD(optim.SGDConfig{LR: eta})
	if err != nil {
		return fmt.Errorf("nn: %w", err)
	}

	params := make([]*matrix.Matrix, 0, 2*len(n.layers))
	grads := make([]*matrix.Matrix, 0, 2*len(n.layers))
	for i, lay := range n.layers {
		params = append(params, lay.weight.Value(), lay.bias.Value())
		grads = append(grads, dW[i], db[i])
	}

	if err := sgd.Step(params, grads); err != nil {
		return fmt.Errorf("nn: adjust parameters: %w", err)
	}
	return nil
}

// RunSingleEpoch shuffles the bound training set and performs one SGD update
// per consecutive mini-batch of batchSize examples. The final batch holds the
// remainder when the set size is not a multiple of batchSize.
func (n *Network) RunSingleEpoch(batchSize int, eta float64) error {
	_, err := n.runEpoch(batchSize, eta)
	return err
}

func (n *Network) runEpoch(batchSize int, eta float64) (int, error) {
	if len(n.trainX) == 0 {
		return 0, fmt.Errorf("nn: %w: no training set bound", ErrInvalidArgument)
	}
	if batchSize <= 0 {
		return 0, fmt.Errorf("nn: %w: batch size must be > 0, got %d", ErrInvalidArgument, batchSize)
	}
	if !(eta > 0) {
		return 0, fmt.Errorf("nn: %w: eta must be > 0, got %v", ErrInvalidArgument, eta)
	}

	if err := n.shuffle(); err != nil {
		return 0, err
	}

	batches := 0
	for start := 0; start < len(n.trainX); start += batchSize {
		end := min(start+batchSize, len(n.trainX))

		g, err := n.MiniBatchGradient(n.trainX[start:end], n.trainY[start:end])
		if err != nil {
			return batches, fmt.Errorf("nn: batch %d: %w", batches, err)
		}
		if err := n.AdjustLearningParameters(eta, g.Weights, g.Biases); err != nil {
			return batches, fmt.Errorf("nn: batch %d: %w", batches, err)
		}
		batches++
	}

	return batches, nil
}

// shuffle reorders trainX and trainY with one permutation so pairs stay
// aligned.
func (n *Network) shuffle() error {
	size := len(n.trainX)
	order := n.permuter.Permute(random.Range(size))

	if len(order) != size {
		return fmt.Errorf("nn: %w: permutation has %d indices, training set has %d",
			ErrInvalidArgument, len(order), size)
	}
	seen := make([]bool, size)
	for _, idx := range order {
		if idx < 0 || idx >= size || seen[idx] {
			return fmt.Errorf("nn: %w: permutation is not a rearrangement of 0..%d", ErrInvalidArgument, size-1)
		}
		seen[idx] = true
	}

	x := make([]*matrix.Matrix, size)
	y := make([]*matrix.Matrix, size)
	for i, idx := range order {
		x[i] = n.trainX[idx]
		y[i] = n.trainY[idx]
	}
	n.trainX, n.trainY = x, y
	return nil
}

// RunAllEpochs runs RunSingleEpoch epochs times and reports every finished
// epoch to the observer.
func (n *Network) RunAllEpochs(batchSize int, eta float64, epochs int) error {
	if epochs <= 0 {
		return fmt.Errorf("nn: %w: epochs must be > 0, got %d", ErrInvalidArgument, epochs)
	}

	for epoch := 1; epoch <= epochs; epoch++ {
		start := time.Now()
		batches, err := n.runEpoch(batchSize, eta)
		if err != nil {
			return fmt.Errorf("nn: epoch %d: %w", epoch, err)
		}

		if n.observer != nil {
			n.observer.EpochCompleted(EpochStats{
				Epoch:    epoch,
				Epochs:   epochs,
				Batches:  batches,
				Examples: len(n.trainX),
				Duration: time.Since(start),
			})
		}
	}
	return nil
}

// Train binds the training set xs, ys and runs config.Epochs epochs of
// mini-batch SGD.
//
// Every xs[i] must be an (InputSize, 1) column vector and every ys[i] an
// (OutputSize, 1) column vector. Errors wrap ErrInvalidArgument for missing
// data or non-positive hyperparameters and ErrDimensionMismatch for vectors
// of the wrong size. The network keeps its own copy of the two slices; the
// caller's slices are never reordered.
func (n *Network) Train(xs, ys []*matrix.Matrix, config TrainConfig) error {
	if xs == nil || ys == nil {
		missing := "trainX"
		if xs != nil {
			missing = "trainY"
		}
		return fmt.Errorf("nn: %w: %s is nil", ErrInvalidArgument, missing)
	}
	if len(xs) == 0 || len(ys) == 0 || xs[0] == nil || ys[0] == nil {
		return fmt.Errorf("nn: %w: training set is empty", ErrInvalidArgument)
	}

	if xs[0].Rows() != n.InputSize() {
		return fmt.Errorf("nn: %w: input rows = %d, input layer size = %d",
			ErrDimensionMismatch, xs[0].Rows(), n.InputSize())
	}
	if ys[0].Rows() != n.OutputSize() {
		return fmt.Errorf("nn: %w: target rows = %d, output layer size = %d",
			ErrDimensionMismatch, ys[0].Rows(), n.OutputSize())
	}

	if err := config.Validate(); err != nil {
		return err
	}

	if len(xs) != len(ys) {
		return fmt.Errorf("nn: %w: %d inputs but %d targets", ErrInvalidArgument, len(xs), len(ys))
	}
	for i := range xs {
		if err := checkColumn(xs[i], n.InputSize()); err != nil {
			return fmt.Errorf("nn: input %d: %w", i, err)
		}
		if err := checkColumn(ys[i], n.OutputSize()); err != nil {
			return fmt.Errorf("nn: target %d: %w", i, err)
		}
	}

	n.trainX = append([]*matrix.Matrix(nil), xs...)
	n.trainY = append([]*matrix.Matrix(nil), ys...)

	return n.RunAllEpochs(config.BatchSize, config.LearningRate, config.Epochs)
}

func checkColumn(m *matrix.Matrix, rows int) error {
	if m == nil {
		return fmt.Errorf("%w: nil vector", ErrInvalidArgument)
	}
	if r, c := m.Dims(); r != rows || c != 1 {
		return &matrix.DimensionError{Op: "train", Left: [2]int{r, c}, Right: [2]int{rows, 1}}
	}
	return nil
}
