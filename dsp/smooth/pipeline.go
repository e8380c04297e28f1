package smooth

// Pipeline is a reusable, ordered sequence of smoothing stages.
// A Pipeline holds no sample state and is safe for concurrent use.
type Pipeline struct {
	stages []Stage
}

// Option appends a stage to a Pipeline.
type Option func(*Pipeline)

// WithMedianPrefilter adds a median filter stage, typically placed first to
// suppress outliers before averaging.
func WithMedianPrefilter(window int) Option {
	return WithStage(MedianStage(window))
}

// WithMovingAverage adds a causal moving average stage.
func WithMovingAverage(window int) Option {
	return WithStage(MovingAverageStage(window))
}

// WithEMA adds an exponential moving average stage.
func WithEMA(window int) Option {
	return WithStage(EMAStage(window))
}

// WithStage adds a custom stage. A nil stage is ignored.
func WithStage(s Stage) Option {
	return func(p *Pipeline) {
		if s != nil {
			p.stages = append(p.stages, s)
		}
	}
}

// NewPipeline builds a Pipeline whose stages run in option order.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Apply runs all stages over values. An empty pipeline returns values.
func (p *Pipeline) Apply(values []float64) []float64 {
	return Chain(values, p.stages...)
}
