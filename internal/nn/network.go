package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/optim"
)

// Network is a fully connected feed-forward network trained one sample at
// a time by backpropagation.
//
// Layer i+1 is computed from layer i as
//
//	a[i+1] = f(W[i] · a[i] + b[i])
//
// where W[i] has shape [layers[i+1], layers[i]] and b[i] has shape
// [layers[i+1], 1]. Activations are column vectors.
//
// The network keeps the activations of its most recent forward pass so that
// BackPropagate can use them. A Network is not safe for concurrent use.
//
// Example:
//
//	net, err := nn.New([]int{2, 3, 1}, nn.Sigmoid(), 0.5, nn.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	if err := net.Train(inputs, targets, 10000); err != nil {
//	    return err
//	}
//	out, err := net.FeedForward([]float64{1, 0})
type Network struct {
	layers       []int
	weights      []*matrix.Matrix // [layers[i+1], layers[i]]
	biases       []*matrix.Matrix // [layers[i+1], 1]
	activation   Activation
	learningRate float64
	optimizer    optim.Optimizer
	progress     ProgressFunc

	// data holds the activations of the last forward pass, data[0] = input.
	data []*matrix.Matrix
}

// New creates a network with the given layer sizes.
//
// For every adjacent pair of layers one weight matrix and then one bias
// column are drawn uniformly from [-1, 1), in layer order.
//
// Parameters:
//   - layers: neuron count per layer, input first; at least two entries, each ≥ 1
//   - act: activation applied after every layer
//   - learningRate: step size, must be > 0
//   - opts: WithSeed, WithSource, WithOptimizer, WithProgress
func New(layers []int, act Activation, learningRate float64, opts ...Option) (*Network, error) {
	if len(layers) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrTopology, len(layers))
	}
	for i, n := range layers {
		if n < 1 {
			return nil, fmt.Errorf("%w: layer %d has %d neurons", ErrTopology, i, n)
		}
	}
	if math.IsNaN(learningRate) || learningRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrLearningRate, learningRate)
	}
	if err := act.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := &Network{
		layers:       append([]int(nil), layers...),
		weights:      make([]*matrix.Matrix, 0, len(layers)-1),
		biases:       make([]*matrix.Matrix, 0, len(layers)-1),
		activation:   act,
		learningRate: learningRate,
		optimizer:    o.optimizer,
		progress:     o.progress,
	}

	for i := 0; i < len(layers)-1; i++ {
		w, err := matrix.Random(layers[i+1], layers[i], o.source)
		if err != nil {
			return nil, fmt.Errorf("nn: weight %d: %w", i, err)
		}
		b, err := matrix.Random(layers[i+1], 1, o.source)
		if err != nil {
			return nil, fmt.Errorf("nn: bias %d: %w", i, err)
		}
		n.weights = append(n.weights, w)
		n.biases = append(n.biases, b)
	}

	return n, nil
}

// Layers returns a copy of the layer sizes.
func (n *Network) Layers() []int {
	return append([]int(nil), n.layers...)
}

// Weights returns copies of the weight matrices, input side first.
func (n *Network) Weights() []*matrix.Matrix {
	return cloneAll(n.weights)
}

// Biases returns copies of the bias columns, input side first.
func (n *Network) Biases() []*matrix.Matrix {
	return cloneAll(n.biases)
}

// Activation returns the activation pair.
func (n *Network) Activation() Activation {
	return n.activation
}

// LearningRate returns the step size.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// Optimizer returns the update rule.
func (n *Network) Optimizer() optim.Optimizer {
	return n.optimizer
}

// StateDict returns copies of all parameters keyed "<i>.weight" and
// "<i>.bias", where i is the transition index.
func (n *Network) StateDict() map[string]*matrix.Matrix {
	state := make(map[string]*matrix.Matrix, 2*len(n.weights))
	for i := range n.weights {
		state[weightKey(i)] = n.weights[i].Clone()
		state[biasKey(i)] = n.biases[i].Clone()
	}
	return state
}

// LoadStateDict replaces all parameters from a state dict produced by
// StateDict. Every key must be present with the expected shape; extra keys
// are ignored. On error the network is left unchanged.
//
// Loading discards any pending forward pass.
func (n *Network) LoadStateDict(state map[string]*matrix.Matrix) error {
	weights := make([]*matrix.Matrix, len(n.weights))
	biases := make([]*matrix.Matrix, len(n.biases))

	for i := range n.weights {
		w, err := lookup(state, weightKey(i), n.weights[i].Shape())
		if err != nil {
			return err
		}
		b, err := lookup(state, biasKey(i), n.biases[i].Shape())
		if err != nil {
			return err
		}
		weights[i], biases[i] = w, b
	}

	n.weights, n.biases = weights, biases
	n.data = nil
	return nil
}

func lookup(state map[string]*matrix.Matrix, key string, want matrix.Shape) (*matrix.Matrix, error) {
	m, ok := state[key]
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrStateDict, key)
	}
	if !m.Shape().Equal(want) {
		return nil, fmt.Errorf("%w: %q has shape %s, expected %s", ErrStateDict, key, m.Shape(), want)
	}
	return m.Clone(), nil
}

func weightKey(i int) string { return fmt.Sprintf("%d.weight", i) }

func biasKey(i int) string { return fmt.Sprintf("%d.bias", i) }

func cloneAll(ms []*matrix.Matrix) []*matrix.Matrix {
	out := make([]*matrix.Matrix, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}
