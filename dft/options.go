package dft

// Options configures transform plans.
type Options struct {
	// SubTransformThreshold is the largest radix a Cooley-Tukey stage
	// computes by direct twiddle sums. Stages with a larger radix store
	// an inner plan for it instead.
	SubTransformThreshold int
}

// Option applies a configuration option.
type Option func(*Options)

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{SubTransformThreshold: 4}
}

// WithSubTransformThreshold sets the radix above which Cooley-Tukey
// stages delegate to an inner plan.
func WithSubTransformThreshold(n int) Option {
	return func(o *Options) {
		o.SubTransformThreshold = n
	}
}

func applyOptions(opts []Option) Options {
	base := DefaultOptions()
	for _, opt := range opts {
		opt(&base)
	}

	return base
}
