// Package metrics defines and registers all custom Prometheus metrics for the
// restaurant API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics are registered with the default Prometheus registry through
// promauto when the package is first imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant_api"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - outcome: "success", "invalid_request", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// AccessDecisionsTotal counts access guard decisions on protected routes.
// Labels:
//   - permission: the permission guarding the route (e.g. "orders:write"), or "any"
//   - decision: "allowed", "unauthorized" or "forbidden"
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of access guard decisions, by permission and decision.",
	},
	[]string{"permission", "decision"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// RestaurantCacheTotal counts restaurant list cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var RestaurantCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restaurant_cache_total",
		Help:      "Total number of restaurant list cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsDeliveredTotal counts events handled by a dispatcher worker.
// Label:
//   - kind: the event kind (e.g. "order.added")
var NotificationsDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_delivered_total",
		Help:      "Total number of post-commit notifications delivered, by kind.",
	},
	[]string{"kind"},
)

// NotificationsDroppedTotal counts events discarded because a worker buffer was full.
var NotificationsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped because the worker queue was full.",
	},
	[]string{"kind"},
)

// NotificationQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly placed orders.
// Label:
//   - status: the initial order status (e.g. "Pending")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by initial status.",
	},
	[]string{"status"},
)
