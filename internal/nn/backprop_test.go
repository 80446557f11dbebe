package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/ann/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func TestSingletonGradientShapes(t *testing.T) {
	n := newTestNetwork(t, []int{3, 4, 2}, 1)
	rng := rand.New(rand.NewSource(1))

	g, err := n.SingletonGradient(randomColumn(t, rng, 3), randomColumn(t, rng, 2))
	require.NoError(t, err)

	// One entry per non-input layer.
	require.Len(t, g.Weights, n.NumLayers()-1)
	require.Len(t, g.Biases, n.NumLayers()-1)

	for l := 1; l < n.NumLayers(); l++ {
		w, _ := n.Weight(l)
		b, _ := n.Bias(l)
		assert.True(t, w.SameShape(g.Weights[l-1]), "dW[%d]", l)
		assert.True(t, b.SameShape(g.Biases[l-1]), "db[%d]", l)
	}
}

func TestSingletonGradientTargetMismatch(t *testing.T) {
	n := newTestNetwork(t, []int{3, 4, 2}, 1)
	rng := rand.New(rand.NewSource(1))

	_, err := n.SingletonGradient(randomColumn(t, rng, 3), randomColumn(t, rng, 3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = n.SingletonGradient(randomColumn(t, rng, 3), nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestSingletonGradientMatchesFiniteDifference compares backpropagation
// against a central difference of the cost for every weight and bias.
func TestSingletonGradientMatchesFiniteDifference(t *testing.T) {
	for _, sizes := range [][]int{{3, 4, 2}, {2, 3, 3, 1}} {
		n := newTestNetwork(t, sizes, 5)
		rng := rand.New(rand.NewSource(6))
		x := randomColumn(t, rng, sizes[0])
		y := randomColumn(t, rng, sizes[len(sizes)-1])

		g, err := n.SingletonGradient(x, y)
		require.NoError(t, err)

		cost := func() float64 {
			out, err := n.Predict(x)
			require.NoError(t, err)
			c, err := QuadraticCost(out, y)
			require.NoError(t, err)
			return c
		}

		for i, lay := range n.layers {
			checks := []struct {
				name     string
				param    *matrix.Matrix
				analytic *matrix.Matrix
			}{
				{lay.weight.Name(), lay.weight.Value(), g.Weights[i]},
				{lay.bias.Name(), lay.bias.Value(), g.Biases[i]},
			}

			for _, c := range checks {
				raw := c.param.Raw()
				original := append([]float64(nil), raw...)

				numeric := fd.Gradient(nil, func(v []float64) float64 {
					copy(raw, v)
					return cost()
				}, original, &fd.Settings{Formula: fd.Central, Step: 1e-5})
				copy(raw, original)

				for k, want := range numeric {
					got := c.analytic.Raw()[k]
					tol := 1e-4*math.Max(math.Abs(want), math.Abs(got)) + 1e-9
					assert.InDelta(t, want, got, tol, "%v %s[%d]", sizes, c.name, k)
				}
			}
		}
	}
}

// TestSingletonGradientTwoLayerClosedForm checks BP1, BP3 and BP4 against
// the hand-written derivative of a network without hidden layers.
func TestSingletonGradientTwoLayerClosedForm(t *testing.T) {
	n := newTestNetwork(t, []int{2, 1}, 1)
	w, _ := matrix.FromSlice(1, 2, []float64{0.3, -0.7})
	b, _ := matrix.ColumnVector(0.1)
	n.layers[0].weight = NewParameter("layer1.weight", w)
	n.layers[0].bias = NewParameter("layer1.bias", b)

	x, _ := matrix.ColumnVector(1.5, 2)
	y, _ := matrix.ColumnVector(0.9)

	g, err := n.SingletonGradient(x, y)
	require.NoError(t, err)

	z := 0.3*1.5 - 0.7*2 + 0.1
	delta := (Sigmoid(z) - 0.9) * SigmoidPrime(z)

	assert.InDelta(t, delta, g.Biases[0].Values()[0], 1e-14)
	assert.InDelta(t, delta*1.5, g.Weights[0].Values()[0], 1e-14)
	assert.InDelta(t, delta*2, g.Weights[0].Values()[1], 1e-14)
}

func TestMiniBatchGradientOfOneEqualsSingleton(t *testing.T) {
	n := newTestNetwork(t, []int{3, 4, 2}, 2)
	rng := rand.New(rand.NewSource(2))
	x, y := randomColumn(t, rng, 3), randomColumn(t, rng, 2)

	single, err := n.SingletonGradient(x, y)
	require.NoError(t, err)
	batch, err := n.MiniBatchGradient([]*matrix.Matrix{x}, []*matrix.Matrix{y})
	require.NoError(t, err)

	for i := range single.Weights {
		assert.Equal(t, single.Weights[i].Values(), batch.Weights[i].Values())
		assert.Equal(t, single.Biases[i].Values(), batch.Biases[i].Values())
	}
}

func TestMiniBatchGradientIsMean(t *testing.T) {
	n := newTestNetwork(t, []int{3, 4, 2}, 3)
	rng := rand.New(rand.NewSource(3))
	xs := randomColumns(t, rng, 5, 3)
	ys := randomColumns(t, rng, 5, 2)

	batch, err := n.MiniBatchGradient(xs, ys)
	require.NoError(t, err)

	for i := range batch.Weights {
		wantW, _ := matrix.New(batch.Weights[i].Dims())
		wantB, _ := matrix.New(batch.Biases[i].Dims())
		for k := range xs {
			g, err := n.SingletonGradient(xs[k], ys[k])
			require.NoError(t, err)
			wantW, _ = wantW.Add(g.Weights[i].Scale(0.2))
			wantB, _ = wantB.Add(g.Biases[i].Scale(0.2))
		}
		assert.True(t, matrix.EqualApprox(wantW, batch.Weights[i], 1e-12), "layer %d weights", i+1)
		assert.True(t, matrix.EqualApprox(wantB, batch.Biases[i], 1e-12), "layer %d biases", i+1)
	}
}

func TestMiniBatchGradientErrors(t *testing.T) {
	n := newTestNetwork(t, []int{3, 4, 2}, 1)
	rng := rand.New(rand.NewSource(1))
	xs := randomColumns(t, rng, 3, 3)
	ys := randomColumns(t, rng, 2, 2)

	_, err := n.MiniBatchGradient(xs, ys)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = n.MiniBatchGradient(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	bad := append(randomColumns(t, rng, 2, 2), randomColumn(t, rng, 4))
	_, err = n.MiniBatchGradient(xs, bad)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
