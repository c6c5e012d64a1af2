package metrics

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoSamples is returned when the metric is requested over empty score
// sequences, e.g. when every URL in a run failed. The metric is undefined in
// that case and callers are expected to report it as such rather than crash.
var ErrNoSamples = errors.New("no samples")

// MeanSquaredError returns the mean of element-wise squared differences
// between the original and improved readability score sequences. The two
// sequences must be index-aligned and of equal length.
func MeanSquaredError(original, improved []float64) (float64, error) {
	if len(original) != len(improved) {
		return 0, fmt.Errorf("score sequences misaligned: %d original vs %d improved", len(original), len(improved))
	}
	if len(original) == 0 {
		return math.NaN(), ErrNoSamples
	}
	var sum float64
	for i := range original {
		d := original[i] - improved[i]
		sum += d * d
	}
	return sum / float64(len(original)), nil
}
