// Package metrics exposes Prometheus instrumentation for the calculation
// service.
package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application. It satisfies the
// dispatcher's observer interface so that every calculation is counted and
// timed regardless of which endpoint triggered it.
type Metrics struct {
	CalculationsTotal  *prometheus.CounterVec
	CalculationSeconds *prometheus.HistogramVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates and registers all metrics on the given registerer. Tests
// use it to avoid duplicate registration on the global registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CalculationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "medcalc_calculations_total",
			Help: "Total number of score calculations by score and outcome",
		}, []string{"score", "outcome"}),
		CalculationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "medcalc_calculation_duration_seconds",
			Help:    "Score calculation latency by score",
			Buckets: prometheus.DefBuckets,
		}, []string{"score"}),
	}
}

// ObserveCalculation records one calculation attempt.
func (m *Metrics) ObserveCalculation(score, outcome string, elapsed time.Duration) {
	m.CalculationsTotal.WithLabelValues(score, outcome).Inc()
	m.CalculationSeconds.WithLabelValues(score).Observe(elapsed.Seconds())
}

// Handler returns the /metrics exposition endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
