package testutil

import "math/rand"

// Ramp returns n samples start, start+step, start+2*step, ...
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// DC generates a constant-valued series.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// DeterministicNoise adds seeded uniform noise in [-amplitude, amplitude]
// to base, returning a new slice.
func DeterministicNoise(seed int64, amplitude float64, base []float64) []float64 {
	out := make([]float64, len(base))
	rng := rand.New(rand.NewSource(seed))
	for i, v := range base {
		out[i] = v + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// WithSpikes returns a copy of base with height added at each position.
// Out-of-range positions are ignored.
func WithSpikes(base []float64, height float64, positions ...int) []float64 {
	out := make([]float64, len(base))
	copy(out, base)
	for _, p := range positions {
		if p >= 0 && p < len(out) {
			out[p] += height
		}
	}
	return out
}
