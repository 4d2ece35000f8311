package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/optim"
)

func sigmoidDerivative(y float64) float64 { return y * (1 - y) }

func mustFrom(t *testing.T, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.From(rows)
	require.NoError(t, err)
	return m
}

func assertMatrix(t *testing.T, want [][]float64, got *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, got)
	assert.True(t, mustFrom(t, want).EqualApprox(got, 1e-12), "want %v, got %v", want, got.ToSlice())
}

// TestSGD_Signal tests the output error signal on column vectors.
func TestSGD_Signal(t *testing.T) {
	sgd := optim.NewSGD()

	gradients, errs, err := sgd.Signal([]float64{0.8, 0.5}, []float64{1, 0}, sigmoidDerivative)
	require.NoError(t, err)

	assertMatrix(t, [][]float64{{0.2}, {-0.5}}, errs)
	assertMatrix(t, [][]float64{{0.16}, {0.25}}, gradients)
}

// TestSGD_Step tests one transition update with known values.
func TestSGD_Step(t *testing.T) {
	sgd := optim.NewSGD()

	weight := mustFrom(t, [][]float64{{1, 2}})
	tr := &optim.Transition{
		Weight: weight,
		Bias:   mustFrom(t, [][]float64{{0.5}}),
		Input:  mustFrom(t, [][]float64{{1}, {3}}),
	}
	gradients := mustFrom(t, [][]float64{{0.1}})
	errs := mustFrom(t, [][]float64{{0.2}})

	next, err := sgd.Step(tr, gradients, errs)
	require.NoError(t, err)

	// W = W + g·inputᵀ = [1, 2] + [0.1, 0.3]
	assertMatrix(t, [][]float64{{1.1, 2.3}}, tr.Weight)
	assertMatrix(t, [][]float64{{0.6}}, tr.Bias)
	// Error flows through the weight used by the forward pass.
	assertMatrix(t, [][]float64{{0.2}, {0.4}}, next)
	// The replaced matrix is untouched.
	assertMatrix(t, [][]float64{{1, 2}}, weight)
}

// TestSGD_StepMismatch tests that a failed step leaves the transition as is.
func TestSGD_StepMismatch(t *testing.T) {
	sgd := optim.NewSGD()

	weight := mustFrom(t, [][]float64{{1, 2}})
	bias := mustFrom(t, [][]float64{{0}})
	tr := &optim.Transition{
		Weight: weight,
		Bias:   bias,
		Input:  mustFrom(t, [][]float64{{1}, {2}, {3}}),
	}

	next, err := sgd.Step(tr, mustFrom(t, [][]float64{{0.1}}), mustFrom(t, [][]float64{{0.1}}))
	assert.ErrorIs(t, err, matrix.ErrIncompatible)
	assert.Nil(t, next)
	assert.Same(t, weight, tr.Weight)
	assert.Same(t, bias, tr.Bias)
}

// TestTransposed_Signal tests that the derivative is applied to the error.
func TestTransposed_Signal(t *testing.T) {
	tr := optim.NewTransposed()

	gradients, errs, err := tr.Signal([]float64{0.25}, []float64{1}, sigmoidDerivative)
	require.NoError(t, err)

	assertMatrix(t, [][]float64{{0.75}}, errs)
	assertMatrix(t, [][]float64{{0.1875}}, gradients)
}

// TestTransposed_SignalRowVectors tests the row orientation.
func TestTransposed_SignalRowVectors(t *testing.T) {
	tr := optim.NewTransposed()

	gradients, errs, err := tr.Signal([]float64{0, 0, 0}, []float64{1, 1, 1}, sigmoidDerivative)
	require.NoError(t, err)

	assert.Equal(t, matrix.Shape{Rows: 1, Cols: 3}, errs.Shape())
	assert.Equal(t, matrix.Shape{Rows: 1, Cols: 3}, gradients.Shape())
}

// TestTransposed_Step tests the single-neuron case where shapes conform.
func TestTransposed_Step(t *testing.T) {
	rule := optim.NewTransposed()

	tr := &optim.Transition{
		Weight: mustFrom(t, [][]float64{{2}}),
		Bias:   mustFrom(t, [][]float64{{0}}),
		Input:  mustFrom(t, [][]float64{{0.5}}),
	}

	next, err := rule.Step(tr, mustFrom(t, [][]float64{{0.1}}), mustFrom(t, [][]float64{{0.3}}))
	require.NoError(t, err)

	assertMatrix(t, [][]float64{{2.05}}, tr.Weight)
	assertMatrix(t, [][]float64{{0.1}}, tr.Bias)
	// Error flows through the updated weight.
	assertMatrix(t, [][]float64{{2.05 * 0.3}}, next)
}

// TestTransposed_StepMultiNeuron tests the documented shape failure.
func TestTransposed_StepMultiNeuron(t *testing.T) {
	rule := optim.NewTransposed()

	// Output transition of a [2, 3, 1] network.
	weight := mustFrom(t, [][]float64{{0.1, 0.2, 0.3}})
	tr := &optim.Transition{
		Weight: weight,
		Bias:   mustFrom(t, [][]float64{{0}}),
		Input:  mustFrom(t, [][]float64{{0.5}, {0.5}, {0.5}}),
	}

	next, err := rule.Step(tr, mustFrom(t, [][]float64{{0.1}}), mustFrom(t, [][]float64{{0.3}}))
	require.ErrorIs(t, err, matrix.ErrIncompatible)
	assert.Contains(t, err.Error(), "weight update")
	assert.Nil(t, next)
	assert.Same(t, weight, tr.Weight)
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "sgd"},
		{name: "transposed"},
		{name: "adam", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := optim.ByName(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, optim.ErrUnknownOptimizer)
				assert.Nil(t, opt)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.name, opt.Name())
		})
	}
}
