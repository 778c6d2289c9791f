// Package metrics defines and registers the service's custom Prometheus
// metrics. It is the single source of truth for metric names, labels, and
// help strings; request-level latency metrics come from the echoprometheus
// middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts bearer-token rejections on write endpoints.
// Label:
//   - reason: "NO_TOKEN", "INVALID_TOKEN", or "EXPIRED_TOKEN"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of rejected bearer credentials, by reason.",
	},
	[]string{"reason"},
)

// RecordsMutatedTotal counts successful catalog mutations.
// Labels:
//   - resource: "attribute", "business_term_owner", "entity", "glossary_term", "source_system"
//   - operation: "create", "update", or "delete"
var RecordsMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_mutated_total",
		Help:      "Total number of successful catalog record mutations.",
	},
	[]string{"resource", "operation"},
)
