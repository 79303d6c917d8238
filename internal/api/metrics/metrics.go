// Package metrics defines and registers all custom Prometheus metrics for the
// shift scheduler API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

const namespace = "scheduler"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts sign-up and sign-in attempts.
// Labels:
//   - operation: "sign_up" or "sign_in"
//   - result: see Outcome
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by operation and result.",
	},
	[]string{"operation", "result"},
)

// SessionResolutionsTotal counts per-request identity resolutions.
// Label:
//   - state: "unresolved", "signed_out", "session_only" or "resolved"
var SessionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of request identity resolutions, by resulting state.",
	},
	[]string{"state"},
)

// ── Shift metrics ─────────────────────────────────────────────────────────────

// ShiftSubmissionsTotal counts shift creation attempts.
// Labels:
//   - kind: "request" (worker) or "assign" (admin)
//   - result: see Outcome
var ShiftSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shift_submissions_total",
		Help:      "Total number of shift requests and assignments, by kind and result.",
	},
	[]string{"kind", "result"},
)

// ShiftDecisionsTotal counts admin decisions on shifts.
// Labels:
//   - status: the requested status, "approved" or "rejected"
//   - result: see Outcome
var ShiftDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shift_decisions_total",
		Help:      "Total number of shift approval decisions, by status and result.",
	},
	[]string{"status", "result"},
)

// Outcome classifies an operation error into a low-cardinality label value:
// "ok", "invalid", "conflict", "unauthorized", "not_found", "remote" or "error".
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidTransition):
		return "invalid"
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyRegistered):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "unauthorized"
	case errors.Is(err, domain.ErrShiftNotFound), errors.Is(err, domain.ErrProfileNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRemote):
		return "remote"
	}
	return "error"
}
