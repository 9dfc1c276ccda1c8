// Package metrics defines and registers all custom Prometheus metrics for
// the portfolio API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Realtime metrics ─────────────────────────────────────────────────────────

// ConnectedClients tracks the number of websocket clients currently attached
// to the fan-out hub.
var ConnectedClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "realtime_connected_clients",
		Help:      "Current number of connected realtime clients.",
	},
)

// BroadcastsTotal counts fan-out broadcasts by event name
// (e.g. "project-add", "collaboration-request").
var BroadcastsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "realtime_broadcasts_total",
		Help:      "Total number of realtime broadcasts, by event name.",
	},
	[]string{"event"},
)

// ── Upload metrics ───────────────────────────────────────────────────────────

// ImagesRelayedTotal counts staged files successfully relayed to the image host.
// Label:
//   - kind: "thumbnail" or "screenshot"
var ImagesRelayedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_relayed_total",
		Help:      "Total number of images relayed to the external image host.",
	},
	[]string{"kind"},
)

// UploadErrorsTotal counts upload failures.
// Label:
//   - reason: "invalid_file", "staging_failed", or "host_rejected"
var UploadErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_errors_total",
		Help:      "Total number of failed upload attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Resource metrics ─────────────────────────────────────────────────────────

// MutationsTotal counts successful create/update/delete operations.
// Labels:
//   - resource: "project", "skill", "experience", or "user"
//   - op: "create", "update", or "delete"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful resource mutations.",
	},
	[]string{"resource", "op"},
)
