package optim

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// SGD implements per-sample gradient descent on column vectors.
//
// Signal:
//
//	errs      = targets - outputs
//	gradients = σ'(outputs)
//
// Step, with g the gradients already scaled by the learning rate:
//
//	next = Wᵀ · errs        (weight before the update)
//	W    = W + g · inputᵀ
//	b    = b + g
//
// Example:
//
//	net, err := nn.New([]int{2, 3, 1}, nn.Sigmoid(), 0.5,
//	    nn.WithOptimizer(optim.NewSGD()))
type SGD struct{}

// NewSGD creates a new SGD update rule.
func NewSGD() *SGD {
	return &SGD{}
}

// Name returns "sgd".
func (s *SGD) Name() string {
	return "sgd"
}

// Signal returns σ'(outputs) and targets - outputs as column vectors.
func (s *SGD) Signal(outputs, targets []float64, derivative func(float64) float64) (*matrix.Matrix, *matrix.Matrix, error) {
	out, err := matrix.Column(outputs)
	if err != nil {
		return nil, nil, fmt.Errorf("sgd: outputs: %w", err)
	}
	tgt, err := matrix.Column(targets)
	if err != nil {
		return nil, nil, fmt.Errorf("sgd: targets: %w", err)
	}

	errs, err := matrix.Subtract(tgt, out)
	if err != nil {
		return nil, nil, fmt.Errorf("sgd: %w", err)
	}
	gradients, err := matrix.Map(out, derivative)
	if err != nil {
		return nil, nil, fmt.Errorf("sgd: %w", err)
	}

	return gradients, errs, nil
}

// Step performs a single gradient descent update of t.
func (s *SGD) Step(t *Transition, gradients, errs *matrix.Matrix) (*matrix.Matrix, error) {
	inputT, err := matrix.Transpose(t.Input)
	if err != nil {
		return nil, fmt.Errorf("sgd: %w", err)
	}
	delta, err := matrix.Multiply(gradients, inputT)
	if err != nil {
		return nil, fmt.Errorf("sgd: weight delta: %w", err)
	}

	// Propagate through the weight the forward pass actually used.
	weightT, err := matrix.Transpose(t.Weight)
	if err != nil {
		return nil, fmt.Errorf("sgd: %w", err)
	}
	next, err := matrix.Multiply(weightT, errs)
	if err != nil {
		return nil, fmt.Errorf("sgd: error signal: %w", err)
	}

	weight, err := matrix.Sum(t.Weight, delta)
	if err != nil {
		return nil, fmt.Errorf("sgd: weight update: %w", err)
	}
	bias, err := matrix.Sum(t.Bias, gradients)
	if err != nil {
		return nil, fmt.Errorf("sgd: bias update: %w", err)
	}

	t.Weight, t.Bias = weight, bias
	return next, nil
}
