package inversion

import "github.com/katalvlaran/lightsout/internal/log"

type options struct {
	builder Builder
	metrics *Metrics
	logger  log.Logger
}

// Option configures a Cache.
type Option func(*options)

// WithBuilder replaces DefaultBuilder. A nil builder panics.
func WithBuilder(b Builder) Option {
	if b == nil {
		panic("inversion: WithBuilder(nil)")
	}

	return func(o *options) { o.builder = b }
}

// WithMetrics instruments the cache.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithLogger overrides the root logger, which is otherwise looked up on
// every call.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	o := options{builder: DefaultBuilder{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
