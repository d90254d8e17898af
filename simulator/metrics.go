// File: metrics.go
// Role: optional Prometheus counters mirroring the simulation-wide
// bookkeeping strategy.Counters already tracks in-process. This is an
// ambient observability layer spec.md never required (§1's "metrics/
// reporting... out of scope" names the batch CSV reporting layer, not a
// live counters surface); SPEC_FULL.md §6 expansion adds it because the
// corpus reaches for prometheus/client_golang wherever a long-running
// process has counters worth exporting.
package simulator

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports per-strategy reschedule counters. A nil *Metrics is
// valid everywhere it is accepted; Simulate skips instrumentation in that
// case.
type Metrics struct {
	reschedules   *prometheus.CounterVec
	sentSchedules *prometheus.CounterVec
	runsTotal     *prometheus.CounterVec
}

// NewMetrics registers and returns a Metrics instance on reg. Pass
// prometheus.NewRegistry() (or prometheus.DefaultRegisterer) from the
// caller so tests can use an isolated registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		reschedules: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simcore",
			Subsystem: "simulator",
			Name:      "reschedules_total",
			Help:      "Number of times a strategy asked the SREA oracle for a new guide.",
		}, []string{"strategy"}),
		sentSchedules: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simcore",
			Subsystem: "simulator",
			Name:      "sent_schedules_total",
			Help:      "Number of reschedules a strategy actually accepted and dispatched.",
		}, []string{"strategy"}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simcore",
			Subsystem: "simulator",
			Name:      "runs_total",
			Help:      "Completed simulation runs, labeled by outcome.",
		}, []string{"strategy", "outcome"}),
	}
	reg.MustRegister(m.reschedules, m.sentSchedules, m.runsTotal)
	return m
}

func (m *Metrics) observe(strategyName string, counters countersView, success bool) {
	if m == nil {
		return
	}
	m.reschedules.WithLabelValues(strategyName).Add(float64(counters.NumReschedules))
	m.sentSchedules.WithLabelValues(strategyName).Add(float64(counters.NumSentSchedules))
	outcome := "success"
	if !success {
		outcome = "inconsistent"
	}
	m.runsTotal.WithLabelValues(strategyName, outcome).Inc()
}

// countersView decouples metrics.go from strategy.Counters' exact field
// names while keeping the call site in simulator.go readable.
type countersView struct {
	NumReschedules   int
	NumSentSchedules int
}
