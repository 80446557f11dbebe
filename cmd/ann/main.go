// Package main provides the ann command line harness.
//
// Usage:
//
//	ann [train] [flags]   train a network on synthetic data (default)
//	ann matrix [-seed N]  print a few matrix products for inspection
//	ann version           show version
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/ann/matrix"
	"github.com/born-ml/ann/nn"
	"github.com/born-ml/ann/random"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(log.Ltime)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	cmd := "train"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(out, "ann %s\n", version)
		return nil
	case "train":
		return runTrain(args, out)
	case "matrix":
		return runMatrix(args, out)
	default:
		return fmt.Errorf("unknown command %q (want train, matrix or version)", cmd)
	}
}

// trainOptions are the flags of the train command.
type trainOptions struct {
	layers   []int
	examples int
	probe    int
	seed     int64
	train    nn.TrainConfig
}

func parseTrainFlags(args []string) (*trainOptions, error) {
	defaults := nn.DefaultTrainConfig()

	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	layers := fs.String("layers", "3,4,2", "Comma separated layer sizes, input first")
	examples := fs.Int("examples", 500, "Number of synthetic training examples")
	probe := fs.Int("probe", 50, "Number of held-out probe examples")
	seed := fs.Int64("seed", -1, "Random seed (-1 = from clock)")
	batch := fs.Int("batch", defaults.BatchSize, "Mini-batch size")
	eta := fs.Float64("eta", defaults.LearningRate, "Learning rate")
	epochs := fs.Int("epochs", defaults.Epochs, "Number of training epochs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	sizes, err := parseLayers(*layers)
	if err != nil {
		return nil, err
	}
	if *examples <= 0 || *probe <= 0 {
		return nil, fmt.Errorf("examples and probe must be > 0, got %d and %d", *examples, *probe)
	}

	opts := &trainOptions{
		layers:   sizes,
		examples: *examples,
		probe:    *probe,
		seed:     *seed,
		train:    nn.TrainConfig{BatchSize: *batch, LearningRate: *eta, Epochs: *epochs},
	}
	if err := opts.train.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid layer size %q: %w", p, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func runTrain(args []string, out io.Writer) error {
	opts, err := parseTrainFlags(args)
	if err != nil {
		return err
	}

	runID := uuid.New()
	logger := log.New(out, fmt.Sprintf("ann[%s] ", runID.String()[:8]), log.Ltime)

	src := random.NewSource(opts.seed)
	net, err := nn.New(opts.layers, nn.Config{
		Sampler:  random.NewGaussian(src),
		Permuter: random.NewPermuter(src),
		Observer: nn.ObserverFunc(func(s nn.EpochStats) {
			logger.Printf("epoch %d/%d: %d batches over %d examples in %v",
				s.Epoch, s.Epochs, s.Batches, s.Examples, s.Duration)
		}),
	})
	if err != nil {
		return err
	}

	data := newSynthetic(random.NewGaussian(src), net.InputSize(), net.OutputSize())
	trainX, trainY, err := data.Examples(opts.examples)
	if err != nil {
		return err
	}
	probeX, probeY, err := data.Examples(opts.probe)
	if err != nil {
		return err
	}

	logger.Printf("run %s: layers %v, %d examples, batch %d, eta %v, epochs %d",
		runID, opts.layers, opts.examples, opts.train.BatchSize, opts.train.LearningRate, opts.train.Epochs)

	before, err := net.Cost(probeX, probeY)
	if err != nil {
		return err
	}
	logger.Printf("probe cost before training: %.6f", before)

	if err := net.Train(trainX, trainY, opts.train); err != nil {
		return err
	}

	after, err := net.Cost(probeX, probeY)
	if err != nil {
		return err
	}
	logger.Printf("probe cost after training:  %.6f (%+.6f)", after, after-before)

	for _, p := range net.Parameters() {
		logger.Printf("  %-14s norm %.4f", p.Name(), floats.Norm(p.Value().Raw(), 2))
	}
	return nil
}

// runMatrix prints P, Q, P·(Q·Qᵀ)+P and a Hadamard product of random
// matrices.
func runMatrix(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("matrix", flag.ContinueOnError)
	seed := fs.Int64("seed", -1, "Random seed (-1 = from clock)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g := random.NewGaussian(random.NewSource(*seed))
	p, err := normalMatrix(g, 3, 4)
	if err != nil {
		return err
	}
	q, err := normalMatrix(g, 4, 7)
	if err != nil {
		return err
	}

	qqt, err := q.Mul(q.T())
	if err != nil {
		return err
	}
	pqqt, err := p.Mul(qqt)
	if err != nil {
		return err
	}
	r, err := pqqt.Add(p)
	if err != nil {
		return err
	}

	a, err := normalMatrix(g, 5, 6)
	if err != nil {
		return err
	}
	b, err := normalMatrix(g, 5, 6)
	if err != nil {
		return err
	}
	h, err := matrix.Hadamard(a, b)
	if err != nil {
		return err
	}

	for _, m := range []struct {
		name string
		m    *matrix.Matrix
	}{{"P", p}, {"Q", q}, {"P*(Q*Q^T)+P", r}, {"A", a}, {"B", b}, {"A (.) B", h}} {
		fmt.Fprintf(out, "---- %s ----\n%s\n", m.name, m.m)
	}
	return nil
}
