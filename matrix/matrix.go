// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"

	"github.com/born-ml/backprop/internal/matrix"
)

// Matrix is a dense row-major float64 matrix.
type Matrix = matrix.Matrix

// Shape is a matrix shape (rows, columns).
type Shape = matrix.Shape

// Source supplies uniform values in [0, 1) for Random.
type Source = matrix.Source

// ShapeError reports the operands of an operation whose shapes do not conform.
type ShapeError = matrix.ShapeError

// Errors returned by matrix operations.
var (
	ErrBadShape     = matrix.ErrBadShape
	ErrRaggedRows   = matrix.ErrRaggedRows
	ErrIncompatible = matrix.ErrIncompatible
	ErrOutOfRange   = matrix.ErrOutOfRange
	ErrNilMatrix    = matrix.ErrNilMatrix
)

// Creation

// NewSource returns a deterministic PCG-backed source for seed.
func NewSource(seed uint64) *rand.Rand {
	return matrix.NewSource(seed)
}

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) (*Matrix, error) {
	return matrix.Zeros(rows, cols)
}

// Random creates a rows×cols matrix with values uniform in [-1, 1).
// A nil src uses the global generator.
func Random(rows, cols int, src Source) (*Matrix, error) {
	return matrix.Random(rows, cols, src)
}

// From creates a matrix from a literal list of rows.
//
// Example:
//
//	m, err := matrix.From([][]float64{{1, 2}, {3, 4}})
func From(rows [][]float64) (*Matrix, error) {
	return matrix.From(rows)
}

// New creates a rows×cols matrix from a row-major slice.
func New(rows, cols int, data []float64) (*Matrix, error) {
	return matrix.New(rows, cols, data)
}

// Column creates an n×1 column vector.
func Column(values []float64) (*Matrix, error) {
	return matrix.Column(values)
}

// RowVector creates a 1×n row vector.
func RowVector(values []float64) (*Matrix, error) {
	return matrix.RowVector(values)
}

// Arithmetic

// Multiply computes the matrix product a·b.
func Multiply(a, b *Matrix) (*Matrix, error) {
	return matrix.Multiply(a, b)
}

// Sum computes a + b element-wise.
func Sum(a, b *Matrix) (*Matrix, error) {
	return matrix.Sum(a, b)
}

// Subtract computes a - b element-wise.
func Subtract(a, b *Matrix) (*Matrix, error) {
	return matrix.Subtract(a, b)
}

// Dot computes the element-wise (Hadamard) product of a and b.
func Dot(a, b *Matrix) (*Matrix, error) {
	return matrix.Dot(a, b)
}

// Scale multiplies every entry of a by k.
func Scale(a *Matrix, k float64) (*Matrix, error) {
	return matrix.Scale(a, k)
}

// Transformations

// Map applies f to every entry of a.
func Map(a *Matrix, f func(float64) float64) (*Matrix, error) {
	return matrix.Map(a, f)
}

// Transpose returns the transpose of a.
func Transpose(a *Matrix) (*Matrix, error) {
	return matrix.Transpose(a)
}

// Interop

// ToGonum copies m into a gonum dense matrix.
func ToGonum(m *Matrix) *mat.Dense {
	return matrix.ToGonum(m)
}

// FromGonum copies a gonum matrix.
func FromGonum(a mat.Matrix) (*Matrix, error) {
	return matrix.FromGonum(a)
}

// ToTensor copies m into a 2-D float64 gorgonia tensor.
func ToTensor(m *Matrix) *tensor.Dense {
	return matrix.ToTensor(m)
}

// FromTensor copies a 2-D float64 gorgonia tensor.
func FromTensor(t *tensor.Dense) (*Matrix, error) {
	return matrix.FromTensor(t)
}
