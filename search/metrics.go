package search

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "degrees"

// Search outcomes used as the "outcome" label value.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics collects search statistics.
type Metrics struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
}

// NewMetrics creates the search collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "search",
				Name:      "total",
				Help:      "Total number of searches by outcome",
			},
			[]string{"outcome"},
		),
		expanded: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "search",
				Name:      "expanded_states",
				Help:      "Number of states expanded per search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}
	reg.MustRegister(m.searches, m.expanded)
	return m
}

func (m *Metrics) observe(res Result, err error) {
	if m == nil {
		return
	}

	switch {
	case err != nil:
		m.searches.WithLabelValues(OutcomeError).Inc()
	case res.Found:
		m.searches.WithLabelValues(OutcomeFound).Inc()
	default:
		m.searches.WithLabelValues(OutcomeNotFound).Inc()
	}
	m.expanded.Observe(float64(res.Expanded))
}
