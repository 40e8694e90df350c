package inversion

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments a Cache.
type Metrics struct {
	Hits         prometheus.Counter
	Misses       prometheus.Counter
	Singular     prometheus.Counter
	BuildSeconds prometheus.Histogram
}

// NewMetrics creates the cache collectors and registers them with reg when
// reg is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lightsout",
			Subsystem: "inverse_cache",
			Name:      "hits_total",
			Help:      "Product calls served from a cached inverse.",
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lightsout",
			Subsystem: "inverse_cache",
			Name:      "misses_total",
			Help:      "Board shapes built and inverted.",
		}),
		Singular: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lightsout",
			Subsystem: "inverse_cache",
			Name:      "singular_total",
			Help:      "Board shapes whose combined operator has no inverse.",
		}),
		BuildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lightsout",
			Subsystem: "inverse_cache",
			Name:      "build_seconds",
			Help:      "Time to build and invert a combined operator.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Hits, m.Misses, m.Singular, m.BuildSeconds)
	}

	return m
}
