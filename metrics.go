package logfilter

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus counters describing filter decisions.
type Metrics struct {
	decisions *prometheus.CounterVec
}

// NewMetrics builds the decision counters and registers them with reg. A nil
// registerer falls back to prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "logfilter",
				Name:      "decisions_total",
				Help:      "Total number of filter decisions, by outcome and requested level.",
			},
			[]string{"outcome", "level"},
		),
	}
	reg.MustRegister(m.decisions)

	return m
}

// ObservedFilterSet wraps a FilterSet so that every IsEnabled decision is
// counted. Module paths are not used as a label; their cardinality is
// unbounded.
type ObservedFilterSet struct {
	filters *FilterSet
	metrics *Metrics
}

// Observe returns a wrapper around the FilterSet that records each decision
// in m.
func (f *FilterSet) Observe(m *Metrics) *ObservedFilterSet {
	return &ObservedFilterSet{filters: f, metrics: m}
}

// FindModule resolves the threshold for a module path; see
// FilterSet.FindModule.
func (o *ObservedFilterSet) FindModule(module string) (Level, bool) {
	return o.filters.FindModule(module)
}

// IsEnabled reports whether module may log at the requested level, counting
// the decision.
func (o *ObservedFilterSet) IsEnabled(module string, requested Level) bool {
	enabled := o.filters.IsEnabled(module, requested)

	outcome := "suppressed"
	if enabled {
		outcome = "admitted"
	}
	o.metrics.decisions.WithLabelValues(outcome, requested.String()).Inc()

	return enabled
}
