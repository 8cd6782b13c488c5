package cache

import "todo-api/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
