package jobs

import "github.com/prometheus/client_golang/prometheus"

var ingestRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ingest_runs_total",
		Help: "How many transaction ingestions ran, partitioned by result.",
	},
	[]string{"result"},
)

var ingestPayments = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ingest_payments_total",
		Help: "How many payments were imported from the bank.",
	},
)

// Metrics returns the Prometheus collectors of the job surface.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{ingestRuns, ingestPayments}
}
