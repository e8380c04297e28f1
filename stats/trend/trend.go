package trend

import (
	"github.com/cwbudde/algo-vecmath"
)

// Fit is the least-squares line y = Intercept + Slope*x over the last N
// samples of a series, with x = 0 at the oldest sample of that window.
// N == 0 marks a fit that could not be computed; Slope and Intercept are 0.
type Fit struct {
	Intercept float64
	Slope     float64
	N         int
}

// At evaluates the fitted line at x.
func (f Fit) At(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// Line returns the fitted values for x = 0..N-1.
func (f Fit) Line() []float64 {
	if f.N == 0 {
		return []float64{}
	}
	out := make([]float64, f.N)
	for i := range out {
		out[i] = f.At(float64(i))
	}
	return out
}

// LinearFit fits y = a + b*x over the last min(window, len(values)) samples.
//
// It requires window > 1 and at least two samples; otherwise, or when the
// normal equations are singular, the zero Fit is returned.
func LinearFit(values []float64, window int) Fit {
	if window <= 1 || len(values) < 2 {
		return Fit{}
	}

	n := min(window, len(values))
	tail := values[len(values)-n:]
	nf := float64(n)

	// Closed forms for x = 0..n-1, in float64 so large n cannot overflow.
	sumX := nf * (nf - 1) / 2
	sumX2 := nf * (nf - 1) * (2*nf - 1) / 6

	xy := ramp(n)
	vecmath.MulBlockInPlace(xy, tail)

	var sumY, sumXY float64
	for i, y := range tail {
		sumY += y
		sumXY += xy[i]
	}

	denom := nf*sumX2 - sumX*sumX
	if denom == 0 {
		return Fit{}
	}

	b := (nf*sumXY - sumX*sumY) / denom
	return Fit{
		Intercept: (sumY - b*sumX) / nf,
		Slope:     b,
		N:         n,
	}
}

// Slope returns the least-squares slope per sample step over the last
// min(window, len(values)) samples. It returns 0 when window <= 1, when
// fewer than two samples are given, or when the fit is degenerate.
func Slope(values []float64, window int) float64 {
	return LinearFit(values, window).Slope
}

// ramp returns 0, 1, ..., n-1.
func ramp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}
