// Package smooth provides stateless smoothing transforms for finite sample
// sequences such as periodic body-weight or sensor readings.
//
// Every transform takes a []float64 and a window size and returns a freshly
// allocated result of the same length. Inputs are never modified. Invalid
// windows are not errors: the transform falls back to returning its input
// unchanged, and an empty input always yields an empty result.
//
// # Transforms
//
//	ma := smooth.MovingAverage(samples, 7)             // causal trailing mean
//	ema := smooth.ExponentialMovingAverage(samples, 7) // alpha = 2/(7+1)
//	med := smooth.MedianFilter(samples, 5)             // centered, odd window only
//
// # Chaining
//
// A median pre-filter removes isolated spikes before averaging:
//
//	p := smooth.NewPipeline(
//		smooth.WithMedianPrefilter(3),
//		smooth.WithEMA(7),
//	)
//	out := p.Apply(samples)
//
// The least-squares trend of a series lives in package stats/trend.
package smooth
