package smooth

import "slices"

// MedianFilter returns the centered running median of values.
//
// For each index i the samples in [i-k, i+k] (k = window/2) are sorted and
// the element at position len/2 is taken. Near the edges the neighbourhood is
// clipped to the available samples without padding, so edge outputs are
// medians of shorter slices.
//
// The window must be positive and odd; otherwise values is returned
// unchanged. A single-sample spike is removed whenever window >= 3 and no
// other spike lies within k samples of it.
func MedianFilter(values []float64, window int) []float64 {
	if window <= 0 || window%2 == 0 {
		return values
	}
	if len(values) == 0 {
		return []float64{}
	}

	k := window / 2
	last := len(values) - 1
	out := make([]float64, len(values))
	scratch := make([]float64, 0, window)

	for i := range values {
		start := max(0, i-k)
		end := min(last, i+k)

		scratch = append(scratch[:0], values[start:end+1]...)
		slices.Sort(scratch)
		out[i] = scratch[len(scratch)/2]
	}

	return out
}
