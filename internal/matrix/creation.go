package matrix

import (
	"fmt"
	"math/rand/v2"
)

// Source supplies uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from the process-wide math/rand/v2 generator.
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // G404: weight initialization is not security-critical
}

// NewSource returns a deterministic PCG-backed source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // G404: reproducible initialization
}

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int) (*Matrix, error) {
	if err := (Shape{Rows: rows, Cols: cols}).Validate(); err != nil {
		return nil, err
	}
	return newMatrix(rows, cols), nil
}

// Random creates a rows×cols matrix with entries drawn independently and
// uniformly from [-1, 1).
//
// Values are taken from src in row-major order. A nil src uses the global
// math/rand/v2 generator.
func Random(rows, cols int, src Source) (*Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = globalSource{}
	}
	for i := range m.data {
		m.data[i] = src.Float64()*2 - 1
	}
	return m, nil
}

// New creates a rows×cols matrix from a row-major slice.
// The slice is copied into the matrix.
func New(rows, cols int, data []float64) (*Matrix, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("%w: shape %s requires %d elements, but got %d",
			ErrBadShape, shape, shape.NumElements(), len(data))
	}
	m := newMatrix(rows, cols)
	copy(m.data, data)
	return m, nil
}

// From creates a matrix from an explicit row-major 2-D literal.
//
// The first row defines the column count; every other row must have the same
// length or ErrRaggedRows is returned.
//
// Example:
//
//	m, err := matrix.From([][]float64{
//	    {1, 2, 3},
//	    {4, 5, 6},
//	})
func From(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty literal", ErrBadShape)
	}
	cols := len(rows[0])
	m := newMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrRaggedRows, i, len(row), cols)
		}
		copy(m.data[i*cols:], row)
	}
	return m, nil
}

// Column creates an n×1 column vector from values.
func Column(values []float64) (*Matrix, error) {
	return New(len(values), 1, values)
}

// RowVector creates a 1×n row vector from values.
func RowVector(values []float64) (*Matrix, error) {
	return New(1, len(values), values)
}
