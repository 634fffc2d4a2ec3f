package stats

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// BackendFailovers counts the times a wallet session switched away from a
	// failing backend.
	BackendFailovers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monawallet_backend_failovers_total",
			Help: "Number of fallbacks from a failing backend to the next one.",
		},
		[]string{"operation", "from", "to"},
	)
	// ConfirmationAnomalies counts utxos reported with a confirmation count
	// that is not consistent with the chain tip.
	ConfirmationAnomalies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monawallet_confirmation_anomalies_total",
			Help: "Number of utxos with an implausible confirmation count.",
		},
		[]string{"backend"},
	)
	// BroadcastedTransactions counts the transactions accepted by a backend.
	BroadcastedTransactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monawallet_broadcasted_transactions_total",
			Help: "Number of transactions successfully broadcasted.",
		},
		[]string{"backend"},
	)
)

func init() {
	prometheus.MustRegister(
		BackendFailovers, ConfirmationAnomalies, BroadcastedTransactions,
	)
}
