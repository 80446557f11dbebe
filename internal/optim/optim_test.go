package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/ann/internal/matrix"
	"github.com/born-ml/ann/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(t *testing.T, values ...float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.ColumnVector(values...)
	require.NoError(t, err)
	return m
}

// TestSGD_SimpleUpdate tests a single update x = x - lr*grad.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := vec(t, 2.0, -1.0)
	grad := vec(t, 1.0, 4.0)

	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)
	require.NoError(t, sgd.Step([]*matrix.Matrix{x}, []*matrix.Matrix{grad}))

	got := x.Values()
	assert.InDelta(t, 1.9, got[0], 1e-12)
	assert.InDelta(t, -1.4, got[1], 1e-12)
	assert.Equal(t, []float64{1.0, 4.0}, grad.Values(), "gradient must not change")
}

// TestSGD_MatchesExplicitFormula compares the in-place update against W - eta*dW.
func TestSGD_MatchesExplicitFormula(t *testing.T) {
	w, err := matrix.FromSlice(2, 3, []float64{0.3, -1.2, 2.5, 0.7, 0.01, -3})
	require.NoError(t, err)
	dw, err := matrix.FromSlice(2, 3, []float64{1.5, 0.2, -0.4, 2, -7, 0.125})
	require.NoError(t, err)

	const eta = 0.37
	want, err := w.Sub(dw.Scale(eta))
	require.NoError(t, err)

	sgd, err := optim.NewSGD(optim.SGDConfig{LR: eta})
	require.NoError(t, err)
	require.NoError(t, sgd.Step([]*matrix.Matrix{w}, []*matrix.Matrix{dw}))

	assert.True(t, matrix.EqualApprox(want, w, 1e-12))
}

func TestSGD_InvalidLR(t *testing.T) {
	for _, lr := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		_, err := optim.NewSGD(optim.SGDConfig{LR: lr})
		assert.ErrorIs(t, err, matrix.ErrInvalidArgument, "lr=%v", lr)
	}
}

func TestSGD_LengthMismatch(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)

	err = sgd.Step([]*matrix.Matrix{vec(t, 1)}, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestSGD_ShapeMismatchLeavesParamsUntouched(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)

	a, b := vec(t, 1, 2), vec(t, 3, 4)
	err = sgd.Step(
		[]*matrix.Matrix{a, b},
		[]*matrix.Matrix{vec(t, 1, 1), vec(t, 1, 1, 1)},
	)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, []float64{1, 2}, a.Values())
	assert.Equal(t, []float64{3, 4}, b.Values())
}

func TestSGD_GetSetLR(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.01})
	require.NoError(t, err)

	var opt optim.Optimizer = sgd
	assert.Equal(t, 0.01, opt.GetLR())

	require.NoError(t, sgd.SetLR(0.5))
	assert.Equal(t, 0.5, sgd.GetLR())
	assert.ErrorIs(t, sgd.SetLR(0), matrix.ErrInvalidArgument)
	assert.Equal(t, 0.5, sgd.GetLR())
}
