package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeros(t *testing.T) {
	m, err := Zeros(2, 3)
	require.NoError(t, err)

	assert.Equal(t, Shape{Rows: 2, Cols: 3}, m.Shape())
	for _, v := range m.Data() {
		assert.Zero(t, v)
	}
}

func TestZeros_InvalidShape(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Zeros(tt.rows, tt.cols)
			assert.ErrorIs(t, err, ErrBadShape)
			assert.Nil(t, m)
		})
	}
}

func TestRandom_Range(t *testing.T) {
	m, err := Random(20, 30, NewSource(7))
	require.NoError(t, err)

	var negative, positive int
	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
		if v < 0 {
			negative++
		} else {
			positive++
		}
	}
	// 600 uniform draws: both halves of the interval must be hit.
	assert.Positive(t, negative)
	assert.Positive(t, positive)
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := Random(3, 4, NewSource(42))
	require.NoError(t, err)
	b, err := Random(3, 4, NewSource(42))
	require.NoError(t, err)
	c, err := Random(3, 4, NewSource(43))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRandom_GlobalSource(t *testing.T) {
	m, err := Random(2, 2, nil)
	require.NoError(t, err)
	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestRandom_MapsUnitIntervalToSymmetricRange(t *testing.T) {
	lo, err := Random(1, 1, constSource(0))
	require.NoError(t, err)
	mid, err := Random(1, 1, constSource(0.5))
	require.NoError(t, err)

	assert.Equal(t, []float64{-1}, lo.Data())
	assert.Equal(t, []float64{0}, mid.Data())
}

func TestFrom(t *testing.T) {
	m, err := From([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToSlice())
}

func TestFrom_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}}
	m, err := From(src)
	require.NoError(t, err)

	src[0][0] = 99
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestFrom_Ragged(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"shorter second row", [][]float64{{1, 2}, {3}}},
		{"longer second row", [][]float64{{1}, {2, 3}}},
		{"empty last row", [][]float64{{1, 2}, {3, 4}, {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := From(tt.rows)
			assert.ErrorIs(t, err, ErrRaggedRows)
			assert.Nil(t, m)
		})
	}
}

func TestFrom_Empty(t *testing.T) {
	_, err := From(nil)
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = From([][]float64{{}})
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestNew(t *testing.T) {
	m, err := New(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToSlice())

	_, err = New(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestColumnAndRowVector(t *testing.T) {
	col, err := Column([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{Rows: 3, Cols: 1}, col.Shape())

	row, err := RowVector([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{Rows: 1, Cols: 3}, row.Shape())

	_, err = Column(nil)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestAccessors_OutOfRange(t *testing.T) {
	m, err := Zeros(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	m, err := From([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = 100
	m.Data()[1] = 100
	m.ToSlice()[1][1] = 100

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToSlice())
}

func TestClone(t *testing.T) {
	m, err := From([][]float64{{1, 2}})
	require.NoError(t, err)

	c := m.Clone()
	assert.True(t, c.Equal(m))
	assert.NotSame(t, m, c)
}

func TestString(t *testing.T) {
	m, err := From([][]float64{{1, 2.5}})
	require.NoError(t, err)
	assert.Equal(t, "Matrix(1x2)[\n  [1, 2.5]\n]", m.String())
}
