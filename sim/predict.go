package sim

import (
	"fmt"
)

// BurstPrediction pairs an observed burst with the estimate that preceded it.
// Predicted-vs-actual stay separate fields so callers can study the
// estimator's error directly.
type BurstPrediction struct {
	Actual    int64   `json:"actual"`
	Predicted float64 `json:"predicted"`
}

// PredictBursts applies exponential averaging over a sequence of observed
// CPU bursts:
//
//	τ(n+1) = α·t(n) + (1-α)·τ(n)
//
// initial is τ(0), the guess before any observation. The i-th returned entry
// holds the i-th actual burst and the estimate held before observing it.
// This is a pure function; SJF/SRTF consume its output when exact burst times
// are unknown, the engine owns none of its state. α must lie in [0, 1].
func PredictBursts(alpha, initial float64, actuals []int64) ([]BurstPrediction, error) {
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: exponential averaging alpha must be in [0, 1], got %g", ErrConfig, alpha)
	}
	predictions := make([]BurstPrediction, len(actuals))
	estimate := initial
	for i, actual := range actuals {
		predictions[i] = BurstPrediction{Actual: actual, Predicted: estimate}
		estimate = alpha*float64(actual) + (1-alpha)*estimate
	}
	return predictions, nil
}
