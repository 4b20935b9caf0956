// Package metrics defines and registers all custom Prometheus metrics for
// the timesheet API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init time; the router
// exposes them on /metrics together with the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timesheet"

// ── Entry metrics ─────────────────────────────────────────────────────────────

// EntriesCreatedTotal counts appended timesheet rows.
// Label:
//   - engagement: the engagement the entry was booked against
var EntriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of timesheet entries created, by engagement.",
	},
	[]string{"engagement"},
)

// EntriesUpdatedTotal counts in-place row updates.
var EntriesUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_updated_total",
		Help:      "Total number of timesheet entries updated.",
	},
)

// EntriesDeletedTotal counts deleted rows.
var EntriesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_deleted_total",
		Help:      "Total number of timesheet entries deleted.",
	},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// RowsAggregatedTotal counts entry rows that passed through the
// budget-vs-actual aggregator.
var RowsAggregatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_aggregated_total",
		Help:      "Total number of timesheet rows aggregated into report rows.",
	},
)

// ExportsTotal counts generated export files.
// Label:
//   - format: "csv" or "xlsx"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of export files generated, by format.",
	},
	[]string{"format"},
)

// LoginFailuresTotal counts rejected credential checks.
var LoginFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of failed login attempts.",
	},
)
