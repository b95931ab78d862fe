// Package metrics defines and registers all custom Prometheus metrics for the
// movie catalog API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register against the default registry at package init; the router
// exposes them on /metrics together with the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure covers unknown user and wrong
//     password alike; the split is deliberately not observable).
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "conflict" (username taken), or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// MovieSearchesTotal counts calls to the movie search endpoint.
var MovieSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movie_searches_total",
		Help:      "Total number of movie search requests.",
	},
)

// CacheTotal counts listing-cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_cache_total",
		Help:      "Total number of listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
