package smooth

// Alpha returns the EMA smoothing factor 2/(window+1) for the given window.
// Returns 0 for window <= 0.
func Alpha(window int) float64 {
	if window <= 0 {
		return 0
	}
	return 2 / (float64(window) + 1)
}

// ExponentialMovingAverage returns the exponential moving average of values
// with smoothing factor Alpha(window).
//
// The first output equals the first sample; every later output is
// alpha*values[i] + (1-alpha)*out[i-1]. A window <= 0 returns values
// unchanged.
func ExponentialMovingAverage(values []float64, window int) []float64 {
	if window <= 0 {
		return values
	}
	if len(values) == 0 {
		return []float64{}
	}

	alpha := Alpha(window)
	out := make([]float64, len(values))
	ema := values[0]
	out[0] = ema
	for i := 1; i < len(values); i++ {
		ema = alpha*values[i] + (1-alpha)*ema
		out[i] = ema
	}

	return out
}
