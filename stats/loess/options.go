package loess

// Defaults used when no option overrides them.
const (
	// DefaultAccuracy is the tolerance below which a local x-spread or the
	// median residual is treated as zero.
	DefaultAccuracy = 1e-12
	// DefaultBandwidth is the fraction of points in each neighbourhood.
	// Values between 0.25 and 0.5 usually work well.
	DefaultBandwidth = 0.3
	// DefaultRobustnessFactor is the number of fitting passes. One or two
	// re-weighting passes are usually enough.
	DefaultRobustnessFactor = 2
)

// Option configures a Smoother.
type Option func(*config)

type config struct {
	accuracy         float64
	bandwidth        float64
	robustnessFactor int
}

func defaultConfig() config {
	return config{
		accuracy:         DefaultAccuracy,
		bandwidth:        DefaultBandwidth,
		robustnessFactor: DefaultRobustnessFactor,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithAccuracy sets the numerical tolerance. Must be > 0.
func WithAccuracy(accuracy float64) Option {
	return func(c *config) {
		c.accuracy = accuracy
	}
}

// WithBandwidth sets the neighbourhood size as a fraction of the sample
// count. Must be in (0, 1].
func WithBandwidth(bandwidth float64) Option {
	return func(c *config) {
		c.bandwidth = bandwidth
	}
}

// WithRobustnessFactor sets the number of fitting passes. A factor of 1
// performs a single plain LOESS sweep without robustness re-weighting.
func WithRobustnessFactor(factor int) Option {
	return func(c *config) {
		c.robustnessFactor = factor
	}
}
