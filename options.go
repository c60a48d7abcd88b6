package hyperlsh

import (
	"log/slog"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	concurrency      int
	multiProbe       bool
}

// Option configures index construction behavior.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithConcurrency sets the number of goroutines a MultiIndex may use
// internally: fan-out of Add across sub-indices and candidate scoring in
// Nearest. Results are identical to the serial path. Values <= 1 keep all
// work on the calling goroutine (the default).
//
// This does not change the external concurrency contract: Add still
// requires external mutual exclusion against other operations on the same
// index. With n > 1 the distance function passed to Nearest must be safe
// for concurrent invocation.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMultiProbe makes candidate collection probe, per sub-index, every
// hash code at Hamming distance 1 from the query's code in addition to
// the exact code. This recovers neighbors that fall just across a single
// hyperplane at the cost of planes extra bucket lookups per sub-index.
func WithMultiProbe() Option {
	return func(o *options) {
		o.multiProbe = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		concurrency:      1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
