// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the weight update rules used by nn.Network.
//
// # Overview
//
// This package contains:
//   - SGD: per-sample gradient descent (the default)
//   - Transposed: an older rule kept for comparison runs; only valid for
//     networks whose layers all have one neuron
//   - Optimizer interface for custom rules
//
// # Basic Usage
//
//	net, err := nn.New([]int{2, 3, 1}, nn.Sigmoid(), 0.5,
//	    nn.WithOptimizer(optim.NewSGD()))
//
// Rules can also be selected by name, as the command line tool does:
//
//	opt, err := optim.ByName("sgd")
package optim

import (
	"github.com/born-ml/backprop/internal/optim"
)

// Optimizer updates one layer transition at a time during BackPropagate.
type Optimizer = optim.Optimizer

// Transition is one weight/bias pair and its forward-pass input.
type Transition = optim.Transition

// SGD is per-sample gradient descent.
type SGD = optim.SGD

// Transposed is the transposed update rule.
type Transposed = optim.Transposed

// ErrUnknownOptimizer is returned by ByName for unregistered names.
var ErrUnknownOptimizer = optim.ErrUnknownOptimizer

// NewSGD creates the default update rule.
func NewSGD() *SGD {
	return optim.NewSGD()
}

// NewTransposed creates the transposed update rule.
func NewTransposed() *Transposed {
	return optim.NewTransposed()
}

// ByName returns an optimizer by name: "sgd" or "transposed".
func ByName(name string) (Optimizer, error) {
	return optim.ByName(name)
}
