package matrix

// Sum performs element-wise addition. Shapes must be identical.
func Sum(a, b *Matrix) (*Matrix, error) {
	return elementwise("sum", a, b, func(x, y float64) float64 { return x + y })
}

// Subtract performs element-wise subtraction a - b. Shapes must be identical.
func Subtract(a, b *Matrix) (*Matrix, error) {
	return elementwise("subtract", a, b, func(x, y float64) float64 { return x - y })
}

// Dot performs the element-wise (Hadamard) product. Shapes must be identical.
//
// This is not the matrix product; see Multiply.
func Dot(a, b *Matrix) (*Matrix, error) {
	return elementwise("dot", a, b, func(x, y float64) float64 { return x * y })
}

// Map applies f to every entry of a and returns a matrix of the same shape.
// f receives the entry value, not its index.
func Map(a *Matrix, f func(float64) float64) (*Matrix, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	result := newMatrix(a.rows, a.cols)
	for i, v := range a.data {
		result.data[i] = f(v)
	}
	return result, nil
}

// Scale multiplies every entry of a by k.
func Scale(a *Matrix, k float64) (*Matrix, error) {
	return Map(a, func(x float64) float64 { return x * k })
}

// Transpose returns the cols×rows matrix with result[j][i] = a[i][j].
func Transpose(a *Matrix) (*Matrix, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	result := newMatrix(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			result.data[j*a.rows+i] = a.data[i*a.cols+j]
		}
	}
	return result, nil
}

func elementwise(op string, a, b *Matrix, f func(x, y float64) float64) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if !a.Shape().Equal(b.Shape()) {
		return nil, incompatible(op, a, b)
	}
	result := newMatrix(a.rows, a.cols)
	for i := range result.data {
		result.data[i] = f(a.data[i], b.data[i])
	}
	return result, nil
}
