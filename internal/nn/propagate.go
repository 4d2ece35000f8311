package nn

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/optim"
)

// FeedForward runs one input vector through the network and returns the
// activations of the last layer.
//
// The activations of every layer are kept until the next BackPropagate.
// On error the previous forward pass, if any, is kept.
func (n *Network) FeedForward(inputs []float64) ([]float64, error) {
	if len(inputs) != n.layers[0] {
		return nil, fmt.Errorf("%w: got %d values, first layer has %d neurons", ErrInputSize, len(inputs), n.layers[0])
	}

	current, err := matrix.Column(inputs)
	if err != nil {
		return nil, fmt.Errorf("feed forward: %w", err)
	}

	data := make([]*matrix.Matrix, 0, len(n.layers))
	data = append(data, current)

	for i := range n.weights {
		z, err := matrix.Multiply(n.weights[i], current)
		if err != nil {
			return nil, fmt.Errorf("feed forward: layer %d: %w", i+1, err)
		}
		z, err = matrix.Sum(z, n.biases[i])
		if err != nil {
			return nil, fmt.Errorf("feed forward: layer %d: %w", i+1, err)
		}
		current, err = matrix.Map(z, n.activation.Function)
		if err != nil {
			return nil, fmt.Errorf("feed forward: layer %d: %w", i+1, err)
		}
		data = append(data, current)
	}

	n.data = data
	return current.Data(), nil
}

// BackPropagate adjusts weights and biases from the output of the last
// FeedForward and the desired targets.
//
// Transitions are updated from the output side to the input side by the
// configured optimizer. Parameters change only if every transition updates
// successfully. A successful call consumes the cached forward pass, so each
// BackPropagate must be preceded by its own FeedForward.
func (n *Network) BackPropagate(outputs, targets []float64) error {
	last := n.layers[len(n.layers)-1]
	if len(targets) != last {
		return fmt.Errorf("%w: got %d values, last layer has %d neurons", ErrTargetSize, len(targets), last)
	}
	if len(outputs) != last {
		return fmt.Errorf("%w: got %d values, last layer has %d neurons", ErrOutputSize, len(outputs), last)
	}
	if n.data == nil {
		return ErrNoForwardPass
	}

	derivative := n.activation.Derivative

	gradients, errs, err := n.optimizer.Signal(outputs, targets, derivative)
	if err != nil {
		return fmt.Errorf("back propagate: %w", err)
	}

	weights := append([]*matrix.Matrix(nil), n.weights...)
	biases := append([]*matrix.Matrix(nil), n.biases...)

	for i := len(weights) - 1; i >= 0; i-- {
		scaled, err := matrix.Dot(gradients, errs)
		if err != nil {
			return fmt.Errorf("back propagate: transition %d: %w", i, err)
		}
		scaled, err = matrix.Scale(scaled, n.learningRate)
		if err != nil {
			return fmt.Errorf("back propagate: transition %d: %w", i, err)
		}

		t := &optim.Transition{Weight: weights[i], Bias: biases[i], Input: n.data[i]}
		errs, err = n.optimizer.Step(t, scaled, errs)
		if err != nil {
			return fmt.Errorf("back propagate: transition %d: %w", i, err)
		}
		weights[i], biases[i] = t.Weight, t.Bias

		gradients, err = matrix.Map(n.data[i], derivative)
		if err != nil {
			return fmt.Errorf("back propagate: transition %d: %w", i, err)
		}
	}

	n.weights, n.biases = weights, biases
	n.data = nil
	return nil
}
