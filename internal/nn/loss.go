package nn

import "fmt"

// MeanSquaredError computes mean((predictions - targets)²).
//
// Train reports this value, averaged over an epoch, through ProgressFunc.
func MeanSquaredError(predictions, targets []float64) (float64, error) {
	if len(predictions) != len(targets) || len(targets) == 0 {
		return 0, fmt.Errorf("%w: %d predictions for %d targets", ErrTargetSize, len(predictions), len(targets))
	}

	var sum float64
	for i, p := range predictions {
		diff := p - targets[i]
		sum += diff * diff
	}
	return sum / float64(len(targets)), nil
}
