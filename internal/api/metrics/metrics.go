// Package metrics defines and registers all custom Prometheus metrics for the
// trade-readiness portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Assessment metrics ────────────────────────────────────────────────────────

// AssessmentsCompletedTotal counts finished assessments.
// Label:
//   - status: readiness classification ("passed", "near_miss", "failed")
var AssessmentsCompletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessments_completed_total",
		Help:      "Total number of completed readiness assessments, by status.",
	},
	[]string{"status"},
)

// AssessmentScore observes final readiness scores.
var AssessmentScore = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "assessment_score",
		Help:      "Distribution of final readiness scores.",
		Buckets:   prometheus.LinearBuckets(10, 10, 10), // 10, 20, … 100
	},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "not_found" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts wizard submissions that reached account creation.
// Label:
//   - result: "success", "exists" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registrations, by result.",
	},
	[]string{"result"},
)

// RegistrationGateTotal counts gate decisions.
// Label:
//   - result: "allowed", "incomplete" or "not_eligible"
var RegistrationGateTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_gate_total",
		Help:      "Total number of registration gate checks, by result.",
	},
	[]string{"result"},
)

// ── Activity metrics ──────────────────────────────────────────────────────────

// ActivityQueueDepth tracks the number of activity events waiting for a worker.
var ActivityQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in the dispatcher.",
	},
)
