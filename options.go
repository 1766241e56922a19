package vecindex

import "runtime"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	concurrency      int
}

// Option configures the wrappers and batch helpers of this package.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithConcurrency bounds the number of queries FindBatch runs at once.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
