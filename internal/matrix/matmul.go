package matrix

import "github.com/born-ml/backprop/internal/parallel"

// multiplyConfig controls row parallelism of Multiply.
// Small products stay sequential because parallel.For falls back below
// MinChunkSize rows.
var multiplyConfig = parallel.DefaultConfig()

// Multiply performs the matrix product a × b.
// For shapes (M, K) × (K, N) the result is (M, N).
//
// Uses the naive O(M·K·N) algorithm: C[i,j] = sum_k A[i,k] * B[k,j].
// Every output row is produced by exactly one worker summing in fixed k order,
// so parallel and sequential runs give bit-identical results.
func Multiply(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.cols != b.rows {
		return nil, incompatible("multiply", a, b)
	}

	result := newMatrix(a.rows, b.cols)
	m, k, n := a.rows, a.cols, b.cols
	parallel.For(m, func(i int) {
		matmulRow(result.data[i*n:(i+1)*n], a.data[i*k:(i+1)*k], b.data, k, n)
	}, multiplyConfig)

	return result, nil
}

// matmulRow computes one output row: c[j] = sum_k a[k] * b[k,j].
func matmulRow(c, a, b []float64, k, n int) {
	for j := 0; j < n; j++ {
		sum := float64(0)
		for kIdx := 0; kIdx < k; kIdx++ {
			sum += a[kIdx] * b[kIdx*n+j]
		}
		c[j] = sum
	}
}
