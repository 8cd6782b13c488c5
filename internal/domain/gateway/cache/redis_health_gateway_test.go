package cache

import (
	"testing"

	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

func TestRedisHealthGatewayDisabled(t *testing.T) {
	health := NewRedisHealthGateway(nil).Health()
	if health.Status != model.StatusUnknown || health.Details["message"] != "disabled" {
		t.Errorf("unexpected health %+v", health)
	}
}

func TestRedisHealthGatewayUnreachable(t *testing.T) {
	// nothing listens on port 1
	client, err := redis.NewClient(redis.NewRedisConfig().WithPort(1))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	health := NewRedisHealthGateway(redis.NewHealthChecker(client)).Health()
	if health.Status != model.StatusDown || health.Details["message"] == "" {
		t.Errorf("unexpected health %+v", health)
	}
}
