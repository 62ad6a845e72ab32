// Package observability holds the Prometheus collectors of the service.
// They are registered on the default registry and exposed on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	JobEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "job_events_total", Help: "Committed domain events by name"},
		[]string{"event"},
	)
	SettledJobsTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "settled_jobs_total", Help: "Jobs completed and settled"},
	)
	SettledAmountCents = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "settled_amount_cents_total", Help: "Sum of settled job prices in cents"},
	)
	PanicAlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "panic_alerts_total", Help: "Panic alerts by role of the reporter"},
		[]string{"role"},
	)

	RelayConnections = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "relay_connections", Help: "Open relay connections"},
	)
	RelayMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "relay_messages_total", Help: "Inbound relay frames by outcome"},
		[]string{"outcome"},
	)
	RelayWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "relay_write_failures_total", Help: "Writes that closed a relay connection"},
	)

	EventPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "event_publish_failures_total", Help: "Failed event deliveries by sink"},
		[]string{"sink"},
	)
)
