package worker

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments a Dispatcher.
type Metrics struct {
	Jobs     *prometheus.CounterVec
	Seconds  *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewMetrics creates the dispatcher collectors and registers them with reg
// when reg is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lightsout",
			Subsystem: "worker",
			Name:      "jobs_total",
			Help:      "Jobs answered, by kind and outcome.",
		}, []string{"kind", "status"}),
		Seconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lightsout",
			Subsystem: "worker",
			Name:      "job_seconds",
			Help:      "Time spent computing a job.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"kind"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lightsout",
			Subsystem: "worker",
			Name:      "jobs_in_flight",
			Help:      "Jobs currently computing.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Jobs, m.Seconds, m.InFlight)
	}

	return m
}
