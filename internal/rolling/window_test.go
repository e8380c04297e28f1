package rolling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindow_PartialThenFull(t *testing.T) {
	w := New(3)
	require.Zero(t, w.Mean())

	want := []float64{1, 1.5, 2, 3, 4}
	for i, v := range []float64{1, 2, 3, 4, 5} {
		w.Push(v)
		require.InDelta(t, want[i], w.Mean(), 1e-12, "index %d", i)
	}
}

func TestWindow_NonPositiveCapacity(t *testing.T) {
	for _, c := range []int{0, -4} {
		w := New(c)
		w.Push(7)
		w.Push(9)
		require.Equal(t, 9.0, w.Mean(), "capacity %d", c)
	}
}
