package bitvec

import "log/slog"

type options struct {
	capacity         uint64
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures a Vec.
type Option func(*options)

// WithCapacity reserves room for at least bits bits up front.
func WithCapacity(bits uint64) Option {
	return func(o *options) {
		o.capacity = bits
	}
}

// WithLogger configures structured logging of storage growth.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitvec.NewJSONLogger(slog.LevelDebug)
//	v := bitvec.NewVec[uint64](bitvec.WithLogger(logger))
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

// WithMetricsCollector configures a collector for storage events.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
