package maintenance

import (
	"context"
	"fmt"

	"todo-api/internal/domain/gateway/db"
)

type maintenanceUseCase struct {
	gateway db.StoreMaintenanceGateway
}

func NewMaintenanceUseCase(gateway db.StoreMaintenanceGateway) UseCase {
	return &maintenanceUseCase{gateway: gateway}
}

func (useCase *maintenanceUseCase) Run(ctx context.Context) (int64, error) {
	if err := useCase.gateway.Optimize(ctx); err != nil {
		return 0, fmt.Errorf("optimize store: %w", err)
	}

	count, err := useCase.gateway.CountItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}
