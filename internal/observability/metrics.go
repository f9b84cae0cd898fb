package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthFailures counts rejected authentication attempts by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gothampost_auth_failures_total",
		Help: "Total number of rejected authentication attempts by reason",
	}, []string{"reason"})

	// PolicyDenials counts authorization denials by action and role.
	PolicyDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gothampost_policy_denials_total",
		Help: "Total number of authorization policy denials by action and role",
	}, []string{"action", "role"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gothampost_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
