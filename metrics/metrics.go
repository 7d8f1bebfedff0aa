// Package metrics exposes prometheus counters for the ingestion pipeline and
// serves them, with a JSON health summary, over HTTP.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// BlocksProcessed counts blocks applied to the reporting database.
	BlocksProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "subscriber_blocks_processed_total",
		Help: "Total number of blocks applied to the reporting database",
	})

	// OperationsApplied counts write operations applied across all blocks.
	OperationsApplied = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "subscriber_operations_applied_total",
		Help: "Total number of write operations applied to the reporting database",
	})

	// StateChangesFiltered counts state changes excluded by the namespace
	// prefix filter.
	StateChangesFiltered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "subscriber_state_changes_filtered_total",
		Help: "Total number of state changes outside the application namespace",
	})

	// ParseErrors counts fatal event parse failures.
	ParseErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "subscriber_parse_errors_total",
		Help: "Total number of event parse failures",
	})

	// ReorgRetries counts subscription retries caused by UNKNOWN_BLOCK
	// responses.
	ReorgRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "subscriber_reorg_retries_total",
		Help: "Total number of subscription retries after UNKNOWN_BLOCK responses",
	})
)

func init() {
	prometheus.MustRegister(
		BlocksProcessed,
		OperationsApplied,
		StateChangesFiltered,
		ParseErrors,
		ReorgRetries,
	)
}
