// Package optim implements the weight update rules applied during the
// network's backward pass.
//
// This package provides:
//   - Optimizer interface: forms the output error signal and updates one
//     layer transition at a time
//   - SGD: textbook per-sample gradient descent (the default)
//   - Transposed: the legacy transposed update rule, kept for comparison runs
//
// The network drives the loop from the output transition to the first one:
//
//	gradients, errs, _ := opt.Signal(outputs, targets, act.Derivative)
//	for i := last; i >= 0; i-- {
//	    gradients = lr * (gradients ⊙ errs)
//	    errs, _ = opt.Step(&Transition{W[i], b[i], data[i]}, gradients, errs)
//	    gradients = act.Derivative(data[i])
//	}
package optim

import (
	"errors"
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// ErrUnknownOptimizer is returned by ByName for unregistered names.
var ErrUnknownOptimizer = errors.New("optim: unknown optimizer")

// Transition is one weight/bias pair between adjacent layers together with
// the activation that entered it on the most recent forward pass.
type Transition struct {
	Weight *matrix.Matrix // [next, prev]
	Bias   *matrix.Matrix // [next, 1]
	Input  *matrix.Matrix // [prev, 1], activation of the preceding layer
}

// Optimizer is the base interface for update rules.
//
// Implementations must not mutate the matrices they receive; Step replaces
// t.Weight and t.Bias with new matrices only when the whole update succeeds.
type Optimizer interface {
	// Name returns the registry name (e.g., "sgd").
	Name() string

	// Signal builds the initial gradient and error matrices from one
	// forward-pass output and its target.
	Signal(outputs, targets []float64, derivative func(float64) float64) (gradients, errs *matrix.Matrix, err error)

	// Step applies the already scaled gradients to t and returns the error
	// signal for the preceding transition.
	Step(t *Transition, gradients, errs *matrix.Matrix) (*matrix.Matrix, error)
}

// ByName returns a new optimizer for a registry name: "sgd" or "transposed".
func ByName(name string) (Optimizer, error) {
	switch name {
	case "sgd":
		return NewSGD(), nil
	case "transposed":
		return NewTransposed(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOptimizer, name)
	}
}
