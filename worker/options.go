package worker

import (
	"fmt"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lightsout/inversion"
	"github.com/katalvlaran/lightsout/internal/log"
)

// DefaultMaxSize bounds every board width, height and N a job may ask for.
const DefaultMaxSize = 256

const tracerName = "github.com/katalvlaran/lightsout/worker"

type options struct {
	concurrency int
	maxSize     int
	cache       *inversion.Cache
	tracer      trace.Tracer
	metrics     *Metrics
	logger      log.Logger
}

// Option configures a Dispatcher.
type Option func(*options)

// WithConcurrency bounds the jobs computing at once. Defaults to GOMAXPROCS.
// It panics for n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("worker: WithConcurrency(%d): must be >= 1", n))
	}

	return func(o *options) { o.concurrency = n }
}

// WithMaxSize overrides DefaultMaxSize. It panics for n < 1.
func WithMaxSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("worker: WithMaxSize(%d): must be >= 1", n))
	}

	return func(o *options) { o.maxSize = n }
}

// WithCache sets the inversion cache. Defaults to inversion.Default.
func WithCache(c *inversion.Cache) Option {
	return func(o *options) {
		if c != nil {
			o.cache = c
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithMetrics instruments the dispatcher.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithLogger overrides the root logger.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	o := options{
		concurrency: runtime.GOMAXPROCS(0),
		maxSize:     DefaultMaxSize,
		cache:       inversion.Default,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}

	return o
}
