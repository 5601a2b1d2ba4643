// Package metrics defines the Prometheus collectors shared across the
// service. Collectors are registered on the default registry at init
// and exposed via the /metrics endpoint.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CascadeTier counts tier outcomes in the generation cascades.
	// pipeline is "plan" or "chat"; outcome is "success" or "exhausted".
	CascadeTier = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wellspring",
		Name:      "cascade_tier_total",
		Help:      "Generation cascade tier outcomes.",
	}, []string{"pipeline", "tier", "outcome"})

	// LLMCalls counts individual model invocations by task and outcome.
	LLMCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wellspring",
		Name:      "llm_calls_total",
		Help:      "LLM invocations by task and outcome.",
	}, []string{"task", "outcome"})

	// LLMLatency observes model call latency per task.
	LLMLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wellspring",
		Name:      "llm_call_duration_seconds",
		Help:      "LLM call latency.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 90},
	}, []string{"task"})

	// RiskLevels tracks the distribution of computed risk levels.
	RiskLevels = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wellspring",
		Name:      "risk_level",
		Help:      "Computed wellness risk levels.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	}, []string{"band"})

	// HTTPRequests counts API requests by route, method and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wellspring",
		Name:      "http_requests_total",
		Help:      "HTTP requests served.",
	}, []string{"route", "method", "status"})

	// HTTPDuration observes request latency per route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wellspring",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// CoinsAwarded sums reward coins granted, by reward type.
	CoinsAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wellspring",
		Name:      "reward_coins_total",
		Help:      "Coins awarded for task completions.",
	}, []string{"reward_type"})
)

// ObserveHTTP records one served request.
func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveRisk records a computed risk level under its band label.
func ObserveRisk(level int, band string) {
	RiskLevels.WithLabelValues(band).Observe(float64(level))
}
