package nn

import "errors"

// Network errors.
var (
	// ErrTopology indicates fewer than two layers or a layer without neurons.
	ErrTopology = errors.New("nn: invalid topology")

	// ErrLearningRate indicates a non-positive or NaN learning rate.
	ErrLearningRate = errors.New("nn: invalid learning rate")

	// ErrActivation indicates an unusable activation pair.
	ErrActivation = errors.New("nn: invalid activation")

	// ErrInputSize indicates an input vector that does not match the first layer.
	ErrInputSize = errors.New("nn: input size mismatch")

	// ErrTargetSize indicates a target vector that does not match the last layer.
	ErrTargetSize = errors.New("nn: target size mismatch")

	// ErrOutputSize indicates an output vector that does not match the last layer.
	ErrOutputSize = errors.New("nn: output size mismatch")

	// ErrNoForwardPass indicates BackPropagate was called without a preceding FeedForward.
	ErrNoForwardPass = errors.New("nn: no forward pass to propagate")

	// ErrSampleCount indicates empty training data or differing input/target counts.
	ErrSampleCount = errors.New("nn: sample count mismatch")

	// ErrEpochs indicates a non-positive epoch count.
	ErrEpochs = errors.New("nn: epochs must be positive")

	// ErrStateDict indicates a missing or mis-shaped parameter in a state dict.
	ErrStateDict = errors.New("nn: invalid state dict")
)
