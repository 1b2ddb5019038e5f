package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector instruments analysis calls. It only registers and updates
// collectors; exposing them over HTTP is the owning system's concern.
// A nil *Collector is valid and records nothing, so engines can be built
// without monitoring in tests.
type Collector struct {
	runsTotal   *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewCollector creates and registers the analysis metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chart_analysis_runs_total",
				Help: "Total number of analysis computations",
			},
			[]string{"component"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chart_analysis_errors_total",
				Help: "Total number of rejected analysis computations",
			},
			[]string{"component"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chart_analysis_duration_seconds",
				Help:    "Duration of analysis computations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"component"},
		),
	}
	reg.MustRegister(c.runsTotal, c.errorsTotal, c.duration)
	return c
}

// Observe records one finished computation.
func (c *Collector) Observe(component string, elapsed time.Duration, err error) {
	if c == nil {
		return
	}
	c.runsTotal.WithLabelValues(component).Inc()
	c.duration.WithLabelValues(component).Observe(elapsed.Seconds())
	if err != nil {
		c.errorsTotal.WithLabelValues(component).Inc()
	}
}
