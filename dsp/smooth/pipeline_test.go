package smooth

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-smooth/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestChain_Order(t *testing.T) {
	v := []float64{150, 151, 400, 152, 153}

	got := Chain(v, MedianStage(3), MovingAverageStage(2))
	want := MovingAverage(MedianFilter(v, 3), 2)
	testutil.RequireSliceNearlyEqual(t, got, want, tolerance)
}

func TestChain_NoStagesAndNilStages(t *testing.T) {
	v := []float64{1, 2, 3}
	require.Equal(t, v, Chain(v))
	require.Equal(t, v, Chain(v, nil, nil))
	testutil.RequireSliceNearlyEqual(t, Chain(v, nil, EMAStage(3)), ExponentialMovingAverage(v, 3), tolerance)
}

func TestPipeline_Options(t *testing.T) {
	p := NewPipeline(
		WithMedianPrefilter(3),
		nil,
		WithStage(nil),
		WithMovingAverage(3),
		WithEMA(4),
	)
	require.Equal(t, 3, p.Len())

	v := testutil.WithSpikes(testutil.Ramp(85, -0.1, 30), 20, 4, 19)
	want := ExponentialMovingAverage(MovingAverage(MedianFilter(v, 3), 3), 4)
	testutil.RequireSliceNearlyEqual(t, p.Apply(v), want, tolerance)
}

func TestPipeline_EmptyIsIdentity(t *testing.T) {
	p := NewPipeline()
	v := []float64{9, 8}
	require.Zero(t, p.Len())
	require.Equal(t, v, p.Apply(v))
	require.Empty(t, p.Apply(nil))
}

func TestPipeline_PrefilterRemovesSpikeBeforeAveraging(t *testing.T) {
	base := testutil.DC(70, 20)
	v := testutil.WithSpikes(base, 30, 10)

	plain := MovingAverage(v, 5)
	filtered := NewPipeline(WithMedianPrefilter(3), WithMovingAverage(5)).Apply(v)

	require.Greater(t, plain[10], 70.0)
	testutil.RequireSliceNearlyEqual(t, filtered, base, tolerance)
}

func TestPipeline_ConcurrentApply(t *testing.T) {
	p := NewPipeline(WithMedianPrefilter(5), WithEMA(7))
	v := testutil.DeterministicNoise(5, 1, testutil.Ramp(90, -0.05, 500))
	want := p.Apply(v)

	var wg sync.WaitGroup
	results := make([][]float64, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Apply(v)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
