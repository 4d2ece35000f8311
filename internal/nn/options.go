package nn

import (
	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/optim"
)

// Option configures a Network at construction time.
type Option func(*options)

type options struct {
	source    matrix.Source
	optimizer optim.Optimizer
	progress  ProgressFunc
}

func defaultOptions() options {
	return options{
		optimizer: optim.NewSGD(),
	}
}

// WithSeed draws the initial weights and biases from a PCG generator seeded
// with seed. Networks built with the same seed and topology are identical.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.source = matrix.NewSource(seed)
	}
}

// WithSource draws the initial weights and biases from src.
// A nil src uses the global generator.
func WithSource(src matrix.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithOptimizer sets the update rule used by BackPropagate.
// Defaults to optim.NewSGD(); nil keeps the default.
func WithOptimizer(opt optim.Optimizer) Option {
	return func(o *options) {
		if opt != nil {
			o.optimizer = opt
		}
	}
}

// WithProgress installs a callback that Train invokes at each progress point.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}
