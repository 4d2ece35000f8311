// Package matrix implements the dense row-major float64 matrix engine used by
// the network: construction, elementwise arithmetic, the matrix product,
// transpose and elementwise function application.
//
// A *Matrix is immutable once built. Every operation allocates and returns a
// new matrix and never writes to its operands.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a rectangular grid of float64 values stored row-major.
//
// Example:
//
//	a, _ := matrix.From([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.Transpose(a)
//	c, _ := matrix.Multiply(a, b) // 2x2
type Matrix struct {
	rows int
	cols int
	data []float64 // len == rows*cols, element (i, j) at i*cols+j
}

// newMatrix allocates a zero-filled matrix without validating the shape.
// Callers are responsible for passing positive dimensions.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns the matrix dimensions.
func (m *Matrix) Shape() Shape {
	return Shape{Rows: m.rows, Cols: m.cols}
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%w: (%d, %d) in %s", ErrOutOfRange, i, j, m.Shape())
	}
	return m.data[i*m.cols+j], nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("%w: row %d in %s", ErrOutOfRange, i, m.Shape())
	}
	row := make([]float64, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row, nil
}

// Data returns a copy of the row-major backing slice.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// ToSlice returns the values as a freshly allocated [][]float64.
func (m *Matrix) ToSlice() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return out
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		rows: m.rows,
		cols: m.cols,
		data: m.Data(),
	}
}

// Equal reports whether m and other have the same shape and identical values.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.EqualApprox(other, 0)
}

// EqualApprox reports whether m and other have the same shape and every pair
// of elements differs by at most tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if m == nil || other == nil {
		return m == other
	}
	if !m.Shape().Equal(other.Shape()) {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix(%s)[\n", m.Shape())
	for i := 0; i < m.rows; i++ {
		sb.WriteString("  [")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}
	sb.WriteString("]")
	return sb.String()
}
