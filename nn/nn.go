// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/optim"
)

// Network is a fully connected feed-forward network trained by
// per-sample backpropagation.
type Network = nn.Network

// Option configures a Network at construction time.
type Option = nn.Option

// Activation is an activation function paired with its derivative,
// evaluated on the activated value.
type Activation = nn.Activation

// Progress describes a training run at a progress point.
type Progress = nn.Progress

// ProgressFunc receives progress reports from Train.
type ProgressFunc = nn.ProgressFunc

// Errors returned by the network.
var (
	ErrTopology      = nn.ErrTopology
	ErrLearningRate  = nn.ErrLearningRate
	ErrActivation    = nn.ErrActivation
	ErrInputSize     = nn.ErrInputSize
	ErrTargetSize    = nn.ErrTargetSize
	ErrOutputSize    = nn.ErrOutputSize
	ErrNoForwardPass = nn.ErrNoForwardPass
	ErrSampleCount   = nn.ErrSampleCount
	ErrEpochs        = nn.ErrEpochs
	ErrStateDict     = nn.ErrStateDict
)

// New creates a network with the given layer sizes, activation and
// learning rate. Weights and biases are drawn uniformly from [-1, 1).
//
// Example:
//
//	net, err := nn.New([]int{2, 3, 1}, nn.Sigmoid(), 0.5, nn.WithSeed(42))
func New(layers []int, act Activation, learningRate float64, opts ...Option) (*Network, error) {
	return nn.New(layers, act, learningRate, opts...)
}

// Options

// WithSeed makes initialization deterministic.
func WithSeed(seed uint64) Option {
	return nn.WithSeed(seed)
}

// WithSource draws initial parameters from src.
func WithSource(src matrix.Source) Option {
	return nn.WithSource(src)
}

// WithOptimizer sets the update rule (default optim.NewSGD()).
func WithOptimizer(opt optim.Optimizer) Option {
	return nn.WithOptimizer(opt)
}

// WithProgress installs a training progress callback.
func WithProgress(fn ProgressFunc) Option {
	return nn.WithProgress(fn)
}

// Activations

// Sigmoid returns the logistic activation.
func Sigmoid() Activation {
	return nn.Sigmoid()
}

// Tanh returns the hyperbolic tangent activation.
func Tanh() Activation {
	return nn.Tanh()
}

// ReLU returns the rectified linear activation.
func ReLU() Activation {
	return nn.ReLU()
}

// LeakyReLU returns a rectifier with slope alpha for negative inputs.
func LeakyReLU(alpha float64) Activation {
	return nn.LeakyReLU(alpha)
}

// Linear returns the identity activation.
func Linear() Activation {
	return nn.Linear()
}

// ActivationByName looks up a built-in activation.
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Loss

// MeanSquaredError computes mean((predictions - targets)²).
func MeanSquaredError(predictions, targets []float64) (float64, error) {
	return nn.MeanSquaredError(predictions, targets)
}
