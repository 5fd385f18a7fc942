// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the Prometheus metrics exported by the service on
// GET /metrics. Metrics register themselves with the default registry on
// import.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "user_gate"

// ── HTTP ─────────────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method: HTTP method
//   - route:  chi route pattern (e.g. "/api/users/{id}"), "unmatched" otherwise
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Gate ─────────────────────────────────────────────────────────────────────

// GateDecisionsTotal counts gate verdicts.
// Labels:
//   - role:    caller role (admin, user, guest)
//   - outcome: "allow", "deny" or "error"
//   - reason:  deny reason, empty otherwise
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of gate decisions by role, outcome and reason.",
	},
	[]string{"role", "outcome", "reason"},
)

// GateSweptTotal counts idle local limiters evicted by the janitor.
var GateSweptTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_limiters_swept_total",
		Help:      "Total number of idle in-process rate limiters evicted.",
	},
)

// ── Auth ─────────────────────────────────────────────────────────────────────

// AuthEventsTotal counts authentication attempts.
// Labels:
//   - event:  "sign_up", "sign_in", "sign_out"
//   - result: "success" or a short failure reason (e.g. "invalid_credentials")
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication events by type and result.",
	},
	[]string{"event", "result"},
)

// Handler returns the Prometheus exposition handler for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
