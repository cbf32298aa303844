// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace API. It is the single source of truth for metric names,
// labels, and help strings. Everything registers with the default registry
// at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successful account creations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "wrong_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the authorization gate.
// The reason label is for operators only; clients always see a uniform 401.
// Label:
//   - reason: "no_token" (no credential supplied) or "rejected" (credential
//     present but not admitted)
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authorization gate.",
	},
	[]string{"reason"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// ArtworksCreatedTotal counts new listings by category.
var ArtworksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artworks_created_total",
		Help:      "Total number of artwork listings created, by category.",
	},
	[]string{"category"},
)

// OrdersCreatedTotal counts placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

// ── View-counter pipeline metrics ─────────────────────────────────────────────

// ViewsProcessedTotal counts view events that incremented a counter.
// Label:
//   - subject: "artwork" or "profile"
var ViewsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_processed_total",
		Help:      "Total number of view events successfully counted.",
	},
	[]string{"subject"},
)

// ViewsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new view, counted)
var ViewsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_dedup_total",
		Help:      "Total number of view dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ViewsErrorsTotal counts view events that failed to persist.
var ViewsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_errors_total",
		Help:      "Total number of view events that failed processing.",
	},
)

// ViewQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var ViewQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "view_queue_depth",
		Help:      "Current number of view events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
