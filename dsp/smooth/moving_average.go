package smooth

import (
	"slices"

	"github.com/cwbudde/algo-smooth/internal/rolling"
)

// MovingAverage returns the causal (trailing) simple moving average of values.
//
// result[i] is the mean of the last min(window, i+1) samples ending at i, so
// the first window-1 outputs average over the available prefix. The window
// never looks ahead.
//
// A window <= 0 returns values unchanged. window == 1 returns an exact copy
// of values.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 {
		return values
	}
	if len(values) == 0 {
		return []float64{}
	}
	if window == 1 {
		return slices.Clone(values)
	}

	out := make([]float64, len(values))
	w := rolling.New(window)
	for i, v := range values {
		w.Push(v)
		out[i] = w.Mean()
	}

	return out
}
