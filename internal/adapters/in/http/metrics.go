package http

import (
	"time"

	"eligibility/internal/core/domain/services"
	"eligibility/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeEligible = "eligible"
	outcomeNone     = "none"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

// Metrics holds the eligibility service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	checksTotal   *prometheus.CounterVec
	checkDuration prometheus.Histogram
}

// NewMetrics registers collectors on a fresh registry. The rule count gauge reads the
// current snapshot on every scrape.
func NewMetrics(tables ports.RuleTableProvider) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eligibility",
				Name:      "checks_total",
				Help:      "Eligibility checks by outcome",
			},
			[]string{"outcome"},
		),
		checkDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "eligibility",
				Name:      "check_duration_seconds",
				Help:      "Time spent answering one eligibility check",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
		),
	}

	registry.MustRegister(m.checksTotal, m.checkDuration)
	registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "eligibility",
			Name:      "rule_table_rules",
			Help:      "Rules in the cached rule table",
		},
		func() float64 { return float64(tables.Snapshot().Len()) },
	))

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) observeCheck(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.checksTotal.WithLabelValues(outcome).Inc()
	m.checkDuration.Observe(d.Seconds())
}

func outcomeOf(result services.EligibilityResult) string {
	if result.IsEmpty() {
		return outcomeNone
	}
	return outcomeEligible
}
