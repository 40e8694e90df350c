package server

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lightsout/internal/log"
)

const (
	// DefaultAddr is the listen address.
	DefaultAddr = ":8080"
	// DefaultMaxRequestBytes bounds a request body or websocket frame.
	DefaultMaxRequestBytes = 1 << 20
	// DefaultShutdownTimeout bounds the graceful shutdown in Run.
	DefaultShutdownTimeout = 5 * time.Second
)

type options struct {
	addr            string
	maxRequestBytes int64
	shutdownTimeout time.Duration
	gatherer        prometheus.Gatherer
	logger          log.Logger
}

// Option configures a Server.
type Option func(*options)

// WithAddr overrides DefaultAddr.
func WithAddr(addr string) Option {
	return func(o *options) { o.addr = addr }
}

// WithMaxRequestBytes overrides DefaultMaxRequestBytes. It panics for n < 1.
func WithMaxRequestBytes(n int64) Option {
	if n < 1 {
		panic(fmt.Sprintf("server: WithMaxRequestBytes(%d): must be >= 1", n))
	}

	return func(o *options) { o.maxRequestBytes = n }
}

// WithShutdownTimeout overrides DefaultShutdownTimeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) { o.shutdownTimeout = d }
}

// WithGatherer selects the metrics served on /metrics. Defaults to
// prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(o *options) { o.gatherer = g }
}

// WithLogger overrides the root logger.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	o := options{
		addr:            DefaultAddr,
		maxRequestBytes: DefaultMaxRequestBytes,
		shutdownTimeout: DefaultShutdownTimeout,
		gatherer:        prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
