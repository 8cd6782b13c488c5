package queue

import (
	"context"

	"todo-api/internal/domain/model"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}

// QueuePinger checks that a queue is reachable.
type QueuePinger interface {
	Ping(ctx context.Context, queueName string) error
}
