package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// ToGonum copies m into a new gonum *mat.Dense.
func ToGonum(m *Matrix) *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.Data())
}

// FromGonum copies any gonum matrix (including views such as a.T()) into a
// new *Matrix.
func FromGonum(a mat.Matrix) (*Matrix, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := a.Dims()
	m, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = a.At(i, j)
		}
	}
	return m, nil
}

// ToTensor copies m into a new float64 gorgonia tensor of shape (rows, cols).
func ToTensor(m *Matrix) *tensor.Dense {
	return tensor.New(tensor.WithShape(m.rows, m.cols), tensor.WithBacking(m.Data()))
}

// FromTensor copies a 2-D float64 gorgonia tensor into a new *Matrix.
// Views are read element by element, so transposed or sliced tensors are
// accepted as long as they are 2-D.
func FromTensor(t *tensor.Dense) (*Matrix, error) {
	if t == nil {
		return nil, ErrNilMatrix
	}
	if t.Dims() != 2 {
		return nil, fmt.Errorf("%w: tensor must be 2-D, got shape %v", ErrBadShape, t.Shape())
	}
	if t.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("%w: tensor must be float64, got %v", ErrBadShape, t.Dtype())
	}

	shape := t.Shape()
	m, err := Zeros(shape[0], shape[1])
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v, err := t.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("tensor at (%d, %d): %w", i, j, err)
			}
			m.data[i*m.cols+j] = v.(float64)
		}
	}
	return m, nil
}
