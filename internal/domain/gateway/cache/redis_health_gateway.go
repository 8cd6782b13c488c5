package cache

import (
	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

type RedisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

// NewRedisHealthGateway reports the rate limiter store. A nil checker means rate
// limiting is disabled.
func NewRedisHealthGateway(checker *redis.HealthChecker) *RedisHealthGateway {
	return &RedisHealthGateway{checker: checker}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	if gateway.checker == nil {
		return model.DisabledComponent()
	}

	result := gateway.checker.HealthCheck()

	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(result.Status),
		Details: result.Details,
	}
}
