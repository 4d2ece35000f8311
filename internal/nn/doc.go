// Package nn implements the feed-forward network and its training loop.
//
// A Network is a stack of fully connected layers sharing one activation.
// It is trained with per-sample backpropagation: FeedForward caches every
// layer's activations, BackPropagate turns the output error into weight and
// bias updates through an optim.Optimizer, and Train repeats both over a
// fixed sample order for a number of epochs.
//
// Example:
//
//	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
//	targets := [][]float64{{0}, {1}, {1}, {0}}
//
//	net, err := nn.New([]int{2, 3, 1}, nn.Sigmoid(), 0.5, nn.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := net.Train(inputs, targets, 10000); err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := net.FeedForward([]float64{1, 0}) // ≈ [1]
package nn
