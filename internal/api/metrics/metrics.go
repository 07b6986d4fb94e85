// Package metrics defines and registers all custom Prometheus metrics for the
// PRANA-G livestock API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pranag"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "ok", "rejected" (bad payload / OTP shape), or "rate_limited"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// ── Scan metrics ──────────────────────────────────────────────────────────────

// ScansCreatedTotal counts recorded diagnostic scans.
// Label:
//   - mode: "muzzle", "spatial", "audio", or "general"
var ScansCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scans_created_total",
		Help:      "Total number of diagnostic scans recorded, by capture mode.",
	},
	[]string{"mode"},
)

// ── Alert metrics ─────────────────────────────────────────────────────────────

// AlertsGeneratedTotal counts system alerts raised by the low-score pipeline.
// Label:
//   - severity: "warning" or "critical"
var AlertsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_generated_total",
		Help:      "Total number of system-generated health alerts, by severity.",
	},
	[]string{"severity"},
)

// AlertQueueDepth tracks the number of alert jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AlertQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "alert_queue_depth",
		Help:      "Current number of alert jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreOpDuration measures the latency of key-value store operations.
// Labels:
//   - op: "get", "set", "del", or "get_by_prefix"
//   - backend: "mongo" or "redis"
var StoreOpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_op_duration_seconds",
		Help:      "Duration of key-value store operations, by operation and backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op", "backend"},
)
