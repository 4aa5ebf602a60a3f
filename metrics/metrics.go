// Package metrics holds the Prometheus collectors of the export service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ExportRequestsTotal counts export requests by outcome
	// (ok, unauthorized, bad_request, server_error).
	ExportRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metagrid_export_requests_total",
			Help: "Export requests by outcome",
		},
		[]string{"outcome"},
	)

	PersonsExported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metagrid_persons_exported_total",
			Help: "Persons written to export responses",
		},
	)

	PersonsSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metagrid_persons_suppressed_total",
			Help: "Persons removed by the hide-totally setting",
		},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metagrid_db_query_duration_seconds",
			Help:    "Database query duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metagrid_db_query_errors_total",
			Help: "Failed database queries",
		},
		[]string{"query"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metagrid_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)

// RecordExport records the outcome of one export request.
func RecordExport(outcome string) {
	ExportRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordDBQuery records a query's duration, and its failure when err is set.
func RecordDBQuery(query string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(query).Inc()
	}
}
