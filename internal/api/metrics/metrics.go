// Package metrics defines and registers all custom Prometheus metrics for the
// hotel management API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "deactivated"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionChecksTotal counts session-check resolutions.
// Label:
//   - outcome: "authenticated", "unauthenticated", or "deactivated"
var SessionChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_checks_total",
		Help:      "Total number of session checks, by outcome.",
	},
	[]string{"outcome"},
)

// GuardRedirectsTotal counts redirects issued by the dashboard guards.
// Label:
//   - reason: "unauthenticated" or "wrong_surface"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of dashboard guard redirects, by reason.",
	},
	[]string{"reason"},
)

// ── Order event metrics ───────────────────────────────────────────────────────

// EventsProcessedTotal counts order events that completed processing.
// Labels:
//   - status: the new order status applied by the event (e.g. "served")
//   - source: the device or station reporting the event (e.g. "kitchen")
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_events_processed_total",
		Help:      "Total number of order events successfully processed.",
	},
	[]string{"status", "source"},
)

// EventsErrorsTotal counts order events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "process_failed")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_events_errors_total",
		Help:      "Total number of order events that failed processing.",
	},
	[]string{"reason"},
)

// EventsQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "order_events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventProcessingDuration measures how long a single event takes to process end-to-end.
// Label:
//   - status: the resulting order status, or "error" on failure
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_event_processing_duration_seconds",
		Help:      "Duration of order event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)

// ── Business metrics ──────────────────────────────────────────────────────────

// BookingsCreatedTotal counts new bookings.
// Label:
//   - channel: "customer" (self-service) or "reception"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by channel.",
	},
	[]string{"channel"},
)

// OrdersPlacedTotal counts placed food orders.
// Label:
//   - channel: "customer" (logged in) or "table" (QR table token)
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of food orders placed, by channel.",
	},
	[]string{"channel"},
)

// BillsSettledTotal counts settled bills.
var BillsSettledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bills_settled_total",
		Help:      "Total number of bills settled.",
	},
)
