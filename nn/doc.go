// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small feed-forward neural network and its
// backpropagation trainer.
//
// # Overview
//
// This package contains:
//   - Network: fully connected layers with one shared activation
//   - Activations: Sigmoid, Tanh, ReLU, LeakyReLU, Linear
//   - Training: FeedForward, BackPropagate, Train, TrainContext, Epoch
//   - Loss: MeanSquaredError (reported through progress callbacks)
//   - Checkpointing: StateDict, LoadStateDict
//
// # Basic Usage
//
//	import "github.com/born-ml/backprop/nn"
//
//	func main() {
//	    inputs := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
//	    targets := [][]float64{{0}, {1}, {1}, {0}}
//
//	    net, err := nn.New([]int{2, 3, 1}, nn.Sigmoid(), 0.5, nn.WithSeed(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := net.Train(inputs, targets, 10000); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, _ := net.FeedForward([]float64{1, 0})
//	    fmt.Println(out) // close to [1]
//	}
//
// # Update Rules
//
// BackPropagate delegates the per-layer update to an optim.Optimizer:
//
//	nn.New(layers, nn.Sigmoid(), 0.5, nn.WithOptimizer(optim.NewTransposed()))
//
// The default optim.SGD is plain gradient descent. optim.Transposed
// reproduces an older update rule and only works on single-neuron layers.
//
// # Progress
//
// Train reports the epoch's mean squared error every epochs/100 epochs
// (every epoch for short runs):
//
//	nn.WithProgress(func(p nn.Progress) {
//	    fmt.Printf("epoch %d/%d loss %.6f\n", p.Epoch, p.Epochs, p.Loss)
//	})
//
// A Network is not safe for concurrent use.
package nn
