// Package metrics exposes Prometheus instrumentation for the assignment
// workflow. Counters are registered on the default registry and served via
// the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Assignment outcome label values.
const (
	ResultAssigned = "assigned"
	ResultFailed   = "failed"
)

var (
	// AssignmentsTotal counts individual order assignment outcomes across
	// single assignments and sweeps.
	AssignmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zepta",
		Subsystem: "assignment",
		Name:      "orders_total",
		Help:      "Order assignment attempts by outcome.",
	}, []string{"result"})

	// SweepsTotal counts completed bulk auto-assignment sweeps.
	SweepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "zepta",
		Subsystem: "assignment",
		Name:      "sweeps_total",
		Help:      "Completed bulk auto-assignment sweeps.",
	})
)

// RecordSweep adds one sweep's outcome counts to the assignment counters.
func RecordSweep(assigned, failed int) {
	SweepsTotal.Inc()
	AssignmentsTotal.WithLabelValues(ResultAssigned).Add(float64(assigned))
	AssignmentsTotal.WithLabelValues(ResultFailed).Add(float64(failed))
}
