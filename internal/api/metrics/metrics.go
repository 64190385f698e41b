// Package metrics defines and registers all custom Prometheus metrics for
// the DARI marketplace API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics registered through promauto attach to the default registry at
// package load; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dari"

// ── Catalogue metrics ─────────────────────────────────────────────────────────

// SearchesTotal counts catalogue filter runs.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of catalogue searches executed.",
	},
)

// PublishQueueDepth tracks listings waiting in each alert-match worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var PublishQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "publish_queue_depth",
		Help:      "Current number of published listings pending in each alert-match worker channel.",
	},
	[]string{"worker_id"},
)

// AlertMatchesTotal counts saved-search hits recorded as notifications.
var AlertMatchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alert_matches_total",
		Help:      "Total number of alert notifications recorded for published listings.",
	},
)

// ── Wallet metrics ────────────────────────────────────────────────────────────

// WalletTransactionsTotal counts wallet mutations.
// Label:
//   - kind: "credit", "debit", or "subscription"
var WalletTransactionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wallet_transactions_total",
		Help:      "Total number of wallet transactions, by kind.",
	},
	[]string{"kind"},
)

// InsufficientFundsTotal counts spends rejected for lack of balance.
// Label:
//   - operation: "phone_unlock" or "boost"
var InsufficientFundsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insufficient_funds_total",
		Help:      "Total number of spend attempts rejected for insufficient balance.",
	},
	[]string{"operation"},
)

// PhoneUnlocksTotal counts successful phone reveals.
// Label:
//   - source: "quota", "subscription", or "balance"
var PhoneUnlocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "phone_unlocks_total",
		Help:      "Total number of phone reveals, by funding source.",
	},
	[]string{"source"},
)

// BoostsAppliedTotal counts successful boost purchases.
// Label:
//   - source: "credit" or "balance"
var BoostsAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "boosts_applied_total",
		Help:      "Total number of listing boosts applied, by funding source.",
	},
	[]string{"source"},
)

// ── External collaborators ────────────────────────────────────────────────────

// GenerateFailuresTotal counts description-generation calls that fell back
// to the static text.
var GenerateFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generate_failures_total",
		Help:      "Total number of description generations that failed and used the fallback.",
	},
)
