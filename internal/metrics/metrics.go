package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ConfirmationsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_confirmations_processed_total",
			Help: "Number of gateway payment confirmations applied",
		},
	)

	RepairsApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_repairs_applied_total",
			Help: "Number of payment records repaired",
		},
	)

	RepairFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_repair_failures_total",
			Help: "Number of payment repairs that could not be persisted",
		},
	)

	ScanDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "reconciliation_scan_duration_seconds",
			Help: "Time taken by a full scan-and-repair pass",
		},
	)
)

func Register() {
	prometheus.MustRegister(ConfirmationsProcessed, RepairsApplied, RepairFailures, ScanDuration)
}
