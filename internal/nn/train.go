package nn

import (
	"context"
	"fmt"
)

// Progress describes the state of a training run at a progress point.
type Progress struct {
	Epoch  int     // 1-based
	Epochs int     // total requested
	Loss   float64 // mean squared error of this epoch, before its updates
}

// ProgressFunc receives progress reports from Train.
type ProgressFunc func(Progress)

// Train runs epochs passes over the samples. Each pass visits every
// (input, target) pair in order and performs FeedForward followed by
// BackPropagate.
//
// With more than 100 epochs progress is reported every epochs/100 epochs,
// otherwise after every epoch.
func (n *Network) Train(inputs, targets [][]float64, epochs int) error {
	return n.TrainContext(context.Background(), inputs, targets, epochs)
}

// TrainContext is like Train but stops between epochs once ctx is done,
// returning the context error. Updates made by completed epochs are kept.
func (n *Network) TrainContext(ctx context.Context, inputs, targets [][]float64, epochs int) error {
	if epochs < 1 {
		return fmt.Errorf("%w: got %d", ErrEpochs, epochs)
	}
	if err := checkSamples(inputs, targets); err != nil {
		return err
	}

	interval := progressInterval(epochs)
	for epoch := 1; epoch <= epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("train: stopped before epoch %d: %w", epoch, err)
		}

		loss, err := n.Epoch(inputs, targets)
		if err != nil {
			return fmt.Errorf("train: epoch %d: %w", epoch, err)
		}

		if n.progress != nil && epoch%interval == 0 {
			n.progress(Progress{Epoch: epoch, Epochs: epochs, Loss: loss})
		}
	}

	return nil
}

// Epoch runs a single pass over the samples and returns the mean squared
// error of the outputs observed before each update.
func (n *Network) Epoch(inputs, targets [][]float64) (float64, error) {
	if err := checkSamples(inputs, targets); err != nil {
		return 0, err
	}

	var total float64
	for i := range inputs {
		outputs, err := n.FeedForward(inputs[i])
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		loss, err := MeanSquaredError(outputs, targets[i])
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if err := n.BackPropagate(outputs, targets[i]); err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		total += loss
	}

	return total / float64(len(inputs)), nil
}

func checkSamples(inputs, targets [][]float64) error {
	if len(inputs) == 0 || len(inputs) != len(targets) {
		return fmt.Errorf("%w: %d inputs, %d targets", ErrSampleCount, len(inputs), len(targets))
	}
	return nil
}

func progressInterval(epochs int) int {
	if epochs > 100 {
		return epochs / 100
	}
	return 1
}
