// Package metrics defines and registers all custom Prometheus metrics for
// the DogMap API. It is the single source of truth for metric names,
// labels, and help strings. Collectors register themselves with the
// default registry at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dogmap"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "bad_credentials", or "invalid_input"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts successful user registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered.",
	},
)

// PlacesCreatedTotal counts newly created places.
// Label:
//   - type: the place type label (e.g. "Parque")
var PlacesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_created_total",
		Help:      "Total number of places created, by type.",
	},
	[]string{"type"},
)

// ReviewsCreatedTotal counts newly created reviews.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews created.",
	},
)

// FavoritesTotal counts favorite mutations.
// Label:
//   - action: "added" or "removed"
var FavoritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_total",
		Help:      "Total number of favorite mutations, labelled by action.",
	},
	[]string{"action"},
)
