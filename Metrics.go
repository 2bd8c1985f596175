package chainhash

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts growth activity. One Metrics can be shared by any number of tables.
type Metrics struct {
	Resizes            prometheus.Counter
	RehashedEntries    prometheus.Counter
	AllocationFailures prometheus.Counter
}

// NewMetrics registers the counters with reg. A nil reg creates unregistered counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Resizes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "chainhash",
			Name:      "resizes_total",
			Help:      "Number of capacity doublings.",
		}),
		RehashedEntries: f.NewCounter(prometheus.CounterOpts{
			Namespace: "chainhash",
			Name:      "rehashed_entries_total",
			Help:      "Entries moved into a new bucket array by a resize.",
		}),
		AllocationFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "chainhash",
			Name:      "allocation_failures_total",
			Help:      "Insertions rejected because the table could not grow.",
		}),
	}
}
