// Package metrics defines and registers all custom Prometheus metrics for
// the LivingBook API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "livingbook"

// BookingsCreatedTotal counts reservations recorded as new documents.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingConflictsTotal counts create requests that matched an existing
// (hotel, date, email) booking and were answered idempotently.
var BookingConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of booking requests answered as already existing.",
	},
)

// AuthDeniedTotal counts requests rejected by the session guard.
// Label:
//   - reason: "missing_token" or "invalid_token"
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests rejected by the session guard, by reason.",
	},
	[]string{"reason"},
)

// SessionsIssuedTotal counts session tokens minted via POST /jwt.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of session tokens issued.",
	},
)

// SessionsRevokedTotal counts tokens denylisted via POST /logout.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of session tokens revoked on logout.",
	},
)
