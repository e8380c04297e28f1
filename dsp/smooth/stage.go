package smooth

// Stage is a single smoothing step. Stages must not modify their input.
type Stage func(values []float64) []float64

// MovingAverageStage returns a Stage running MovingAverage with window.
func MovingAverageStage(window int) Stage {
	return func(values []float64) []float64 {
		return MovingAverage(values, window)
	}
}

// EMAStage returns a Stage running ExponentialMovingAverage with window.
func EMAStage(window int) Stage {
	return func(values []float64) []float64 {
		return ExponentialMovingAverage(values, window)
	}
}

// MedianStage returns a Stage running MedianFilter with window.
func MedianStage(window int) Stage {
	return func(values []float64) []float64 {
		return MedianFilter(values, window)
	}
}

// Chain applies stages to values from left to right. Nil stages are skipped.
// With no stages, values is returned unchanged.
func Chain(values []float64, stages ...Stage) []float64 {
	out := values
	for _, s := range stages {
		if s == nil {
			continue
		}
		out = s(out)
	}
	return out
}
