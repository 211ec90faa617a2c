package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	quickExpenseTotal    *prometheus.CounterVec
	quickExpenseDuration prometheus.Histogram
	transactionsCreated  *prometheus.CounterVec
	csvExportsTotal      prometheus.Counter
	csvExportRows        prometheus.Histogram
	authEventsTotal      *prometheus.CounterVec
	registrationsTotal   prometheus.Counter
	budgetsAllocated     *prometheus.CounterVec
	cashOnHandGauge      prometheus.Gauge
	listingDuration      prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		quickExpenseTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quick_expense_total",
				Help: "Total number of quick-expense submissions by outcome",
			},
			[]string{"status"},
		),
		quickExpenseDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "quick_expense_duration_milliseconds",
				Help:    "Quick-expense processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions created by type",
			},
			[]string{"type"},
		),
		csvExportsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "csv_exports_total",
				Help: "Total number of CSV exports generated",
			},
		),
		csvExportRows: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "csv_export_rows",
				Help:    "Number of rows per generated CSV export",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event", "status"},
		),
		registrationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "registrations_total",
				Help: "Total number of completed registrations",
			},
		),
		budgetsAllocated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgets_allocated_total",
				Help: "Total number of budget allocations by period type",
			},
			[]string{"budget_type"},
		),
		cashOnHandGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "cash_on_hand_last_observed",
				Help: "Cash on hand of the most recently updated profile",
			},
		),
		listingDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_listing_duration_milliseconds",
				Help:    "Filtered transaction listing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "quick_expense":
		m.quickExpenseTotal.With(prometheus.Labels{"status": tags["status"]}).Inc()
	case "transaction_created":
		m.transactionsCreated.With(prometheus.Labels{"type": tags["type"]}).Inc()
	case "csv_export":
		m.csvExportsTotal.Inc()
	case "auth_event":
		m.authEventsTotal.With(prometheus.Labels{
			"event":  tags["event"],
			"status": tags["status"],
		}).Inc()
	case "registration":
		m.registrationsTotal.Inc()
	case "budget_allocated":
		m.budgetsAllocated.With(prometheus.Labels{"budget_type": tags["budget_type"]}).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	ms := float64(duration.Milliseconds())
	switch name {
	case "quick_expense":
		m.quickExpenseDuration.Observe(ms)
	case "transaction_listing":
		m.listingDuration.Observe(ms)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "cash_on_hand":
		m.cashOnHandGauge.Set(value)
	case "csv_export_rows":
		m.csvExportRows.Observe(value)
	}
}
