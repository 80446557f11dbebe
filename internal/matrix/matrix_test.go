package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromSlice(t *testing.T, rows, cols int, data ...float64) *Matrix {
	t.Helper()
	m, err := FromSlice(rows, cols, data)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	m, err := New(3, 4)
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	for _, v := range m.Values() {
		assert.Zero(t, v)
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative rows", -1, 2},
		{"negative cols", 2, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.rows, tt.cols)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromSliceCopies(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m := mustFromSlice(t, 2, 2, data...)
	data[0] = 100

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestAtSet(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 7.5}, m.Values())
}

func TestAtSetOutOfRange(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}} {
		_, err := m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "At%v", idx)

		err = m.Set(idx[0], idx[1], 1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "Set%v", idx)

		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, idx[0], ie.Row)
		assert.Equal(t, idx[1], ie.Col)
		assert.Equal(t, 2, ie.Rows)
		assert.Equal(t, 3, ie.Cols)
	}
}

func TestColumnVector(t *testing.T) {
	v, err := ColumnVector(1, 2, 3)
	require.NoError(t, err)
	rows, cols := v.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)

	_, err = ColumnVector()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCloneIsIndependent(t *testing.T) {
	m := mustFromSlice(t, 1, 2, 1, 2)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestFill(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	next := 0.0
	require.NoError(t, m.Fill(func() (float64, error) {
		next++
		return next, nil
	}))
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Values())

	boom := errors.New("boom")
	err = m.Fill(func() (float64, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestApply(t *testing.T) {
	m := mustFromSlice(t, 2, 2, 1, 2, 3, 4)
	sq := m.Apply(func(v float64) float64 { return v * v })

	assert.Equal(t, []float64{1, 4, 9, 16}, sq.Values())
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Values(), "operand must not change")
}

func TestEqualApprox(t *testing.T) {
	p := mustFromSlice(t, 1, 2, 1, 2)
	q := mustFromSlice(t, 1, 2, 1+1e-12, 2)
	r := mustFromSlice(t, 2, 1, 1, 2)

	assert.True(t, EqualApprox(p, q, 1e-9))
	assert.False(t, EqualApprox(p, q, 0))
	assert.False(t, EqualApprox(p, r, 1), "different shapes never compare equal")
}

func TestString(t *testing.T) {
	m := mustFromSlice(t, 2, 2, 1, 2, 3, 4)
	assert.Equal(t, "[1 2]\n[3 4]", m.String())
}
