package redis

import (
	"context"
	"strconv"
	"time"
)

type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 2 * time.Second,
	}
}

// HealthCheck pings Redis and reports pool statistics
func (h *HealthChecker) HealthCheck() RedisHealthCheck {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	config := h.client.GetConfig()
	details := map[string]string{
		"address":  config.Addr(),
		"database": strconv.Itoa(config.Database),
	}

	if err := h.client.Ping(ctx); err != nil {
		details["message"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	stats := h.client.GetClient().PoolStats()
	details["message"] = string(StatusUp)
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)

	return RedisHealthCheck{Status: StatusUp, Details: details}
}
