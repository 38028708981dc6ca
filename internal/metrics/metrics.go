package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal *prometheus.CounterVec
	votesTotal        *prometheus.CounterVec
	invalidationTotal *prometheus.CounterVec
	registerOnce      sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "polly",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the poll service.",
		}, []string{"method", "path", "status"})
		votesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "polly",
			Name:      "votes_total",
			Help:      "Vote attempts by outcome.",
		}, []string{"outcome"})
		invalidationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "polly",
			Name:      "view_invalidations_total",
			Help:      "Routes marked stale after a mutation.",
		}, []string{"route"})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// IncVote records one vote attempt; outcome is "accepted" or an error code.
func IncVote(outcome string) {
	if votesTotal == nil {
		return
	}
	votesTotal.WithLabelValues(outcome).Inc()
}

// IncInvalidation takes a route pattern, not a concrete path, to keep cardinality bounded.
func IncInvalidation(route string) {
	if invalidationTotal == nil {
		return
	}
	invalidationTotal.WithLabelValues(route).Inc()
}
