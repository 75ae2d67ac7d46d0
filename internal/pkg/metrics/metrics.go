// Package metrics defines and registers the custom Prometheus metrics of the
// console gateway. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// ── Gate metrics ──────────────────────────────────────────────────────────────

// GateDecisionsTotal counts route gate outcomes.
// Label:
//   - state: "checking", "authorized" or "unauthorized"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of route gate evaluations, by resulting state.",
	},
	[]string{"state"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditDedupTotal counts audit deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new decision, stored)
var AuditDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dedup_total",
		Help:      "Total number of audit deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// AuditErrorsTotal counts decisions that could not be persisted.
var AuditErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of gate decisions that failed to persist.",
	},
)

// AuditDroppedTotal counts decisions dropped because a worker queue was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of gate decisions dropped on a full dispatcher queue.",
	},
)

// AuditQueueDepth tracks the number of decisions waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of decisions pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionStoreOpsTotal counts session store operations.
// Labels:
//   - backend: "memory", "redis" or "mongo"
//   - op: "get", "set", "remove" or "clear"
//   - result: "ok" or "error"
var SessionStoreOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_store_ops_total",
		Help:      "Total number of session store operations, by backend, operation and result.",
	},
	[]string{"backend", "op", "result"},
)

// TokenRecoveriesTotal counts tokens recovered from the stored user session
// and written back under "authToken".
var TokenRecoveriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_recoveries_total",
		Help:      "Total number of auth tokens recovered from the user session document.",
	},
)

// SessionOpDuration measures session store latency.
// Label:
//   - backend: "memory", "redis" or "mongo"
var SessionOpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "session_store_op_duration_seconds",
		Help:      "Duration of session store operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"backend"},
)
