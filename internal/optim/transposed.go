package optim

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// Transposed reproduces the legacy transposed update rule, defects
// included, for behavioural parity runs.
//
// Signal works on row vectors and applies the derivative to the error
// itself rather than to the outputs:
//
//	errs      = targets - outputs      [1, out]
//	gradients = σ'(errs)
//
// Step adds the update to the transposed weight and propagates the error
// through the updated weight:
//
//	W    = Wᵀ + g · inputᵀ
//	b    = b + g
//	next = Wᵀ · errs        (weight after the update)
//
// The operand shapes only conform when every layer has a single neuron,
// e.g. topology [1, 1]. Any other topology fails with
// matrix.ErrIncompatible on the first transition.
type Transposed struct{}

// NewTransposed creates a new Transposed update rule.
func NewTransposed() *Transposed {
	return &Transposed{}
}

// Name returns "transposed".
func (tr *Transposed) Name() string {
	return "transposed"
}

// Signal returns σ'(targets - outputs) and targets - outputs as row vectors.
func (tr *Transposed) Signal(outputs, targets []float64, derivative func(float64) float64) (*matrix.Matrix, *matrix.Matrix, error) {
	out, err := matrix.RowVector(outputs)
	if err != nil {
		return nil, nil, fmt.Errorf("transposed: outputs: %w", err)
	}
	tgt, err := matrix.RowVector(targets)
	if err != nil {
		return nil, nil, fmt.Errorf("transposed: targets: %w", err)
	}

	errs, err := matrix.Subtract(tgt, out)
	if err != nil {
		return nil, nil, fmt.Errorf("transposed: %w", err)
	}
	gradients, err := matrix.Map(errs, derivative)
	if err != nil {
		return nil, nil, fmt.Errorf("transposed: %w", err)
	}

	return gradients, errs, nil
}

// Step applies the transposed update to t.
func (tr *Transposed) Step(t *Transition, gradients, errs *matrix.Matrix) (*matrix.Matrix, error) {
	inputT, err := matrix.Transpose(t.Input)
	if err != nil {
		return nil, fmt.Errorf("transposed: %w", err)
	}
	delta, err := matrix.Multiply(gradients, inputT)
	if err != nil {
		return nil, fmt.Errorf("transposed: weight delta: %w", err)
	}
	weightT, err := matrix.Transpose(t.Weight)
	if err != nil {
		return nil, fmt.Errorf("transposed: %w", err)
	}
	weight, err := matrix.Sum(weightT, delta)
	if err != nil {
		return nil, fmt.Errorf("transposed: weight update: %w", err)
	}
	bias, err := matrix.Sum(t.Bias, gradients)
	if err != nil {
		return nil, fmt.Errorf("transposed: bias update: %w", err)
	}

	updatedT, err := matrix.Transpose(weight)
	if err != nil {
		return nil, fmt.Errorf("transposed: %w", err)
	}
	next, err := matrix.Multiply(updatedT, errs)
	if err != nil {
		return nil, fmt.Errorf("transposed: error signal: %w", err)
	}

	t.Weight, t.Bias = weight, bias
	return next, nil
}
