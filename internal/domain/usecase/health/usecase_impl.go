package health

import (
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	cacheHealth := useCase.cacheGateway.Health()
	queueHealth := useCase.queueGateway.Health()

	// UNKNOWN components are switched off and do not count
	overallStatus := model.StatusUp
	for _, component := range []model.ComponentHealthStatus{dbHealth, cacheHealth, queueHealth} {
		if component.Status == model.StatusDown {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Database:    dbHealth,
		RateLimiter: cacheHealth,
		Queue:       queueHealth,
	}
}
