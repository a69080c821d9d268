// Package metrics defines and registers all custom Prometheus metrics for
// the HealthTrack API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "healthtrack"

// LoginAttemptsTotal counts login outcomes.
// Labels:
//   - result: "success" or "failure"
//   - kind: the resolved or declared principal kind ("USER", "DOCTOR"), or
//     "" when an undeclared login failed before resolution
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result and principal kind.",
	},
	[]string{"result", "kind"},
)

// RegistrationsTotal counts successfully created principals.
// Label:
//   - kind: "USER" or "DOCTOR"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of principals created, by kind.",
	},
	[]string{"kind"},
)

// TokenVerificationsTotal counts bearer token checks at the auth middleware.
// Label:
//   - result: "success" or "failure"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)
