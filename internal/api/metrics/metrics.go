// Package metrics defines and registers the portal's custom Prometheus
// metrics. It is the single source of truth for metric names, labels, and
// help strings; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsClearedTotal counts cleared sessions.
// Label:
//   - reason: "logout" or "expired"
var SessionsClearedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_cleared_total",
		Help:      "Total number of sessions cleared, by reason.",
	},
	[]string{"reason"},
)

// ValidationFailuresTotal counts form submissions rejected locally before
// any network call.
// Label:
//   - form: "login", "register", "shipment", or "tracking"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of form submissions rejected by local validation.",
	},
	[]string{"form"},
)

// ShipmentsSubmittedTotal counts shipment submissions that reached the
// upstream.
// Label:
//   - outcome: "created" or "rejected"
var ShipmentsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_submitted_total",
		Help:      "Total number of shipment submissions forwarded upstream, by outcome.",
	},
	[]string{"outcome"},
)

// TrackingQueriesTotal counts tracking lookups.
// Label:
//   - result: "ok", "not_found", "malformed_payload", or "error"
var TrackingQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_queries_total",
		Help:      "Total number of tracking queries, by result.",
	},
	[]string{"result"},
)
