// Package metricskey declares the metrics emitted by the model-routing layer.
package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsRouterClientsCreated is a counter metric for LLM clients created by the router
	StatsRouterClientsCreated = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_router_clients_created",
		Help:         "stats_router_clients_created provides total LLM clients created by the router",
		RequiredTags: []string{"provider", "model"},
	}

	StatsRouterFallbacks = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_router_fallbacks",
		Help:         "stats_router_fallbacks provides total fallbacks from the free tier to the paid provider",
		RequiredTags: []string{"reason"},
	}

	StatsRouterBreakerTripped = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_router_breaker_tripped",
		Help:         "stats_router_breaker_tripped provides total circuit-breaker suspensions of free-tier models",
		RequiredTags: []string{"model"},
	}

	StatsRouterBreakerReset = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_router_breaker_reset",
		Help:         "stats_router_breaker_reset provides total operator resets of the circuit breaker",
		RequiredTags: []string{},
	}
)

// Perf
var (
	PerfCreateClient = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_router_create_client",
		Help:         "perf_router_create_client provides duration of client resolution",
		RequiredTags: []string{"role"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfCreateClient,
	&StatsRouterBreakerReset,
	&StatsRouterBreakerTripped,
	&StatsRouterClientsCreated,
	&StatsRouterFallbacks,
}
