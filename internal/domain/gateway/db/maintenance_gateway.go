package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type StoreMaintenanceGateway interface {
	// Optimize refreshes the query planner statistics of the store
	Optimize(ctx context.Context) error
	CountItems(ctx context.Context) (int64, error)
}

type GormStoreMaintenanceGateway struct {
	DB *gorm.DB
}

var _ StoreMaintenanceGateway = (*GormStoreMaintenanceGateway)(nil)

func NewGormStoreMaintenanceGateway(db *gorm.DB) *GormStoreMaintenanceGateway {
	return &GormStoreMaintenanceGateway{DB: db}
}

func (gateway *GormStoreMaintenanceGateway) Optimize(ctx context.Context) error {
	var statement string
	switch dialect := gateway.DB.Dialector.Name(); dialect {
	case "sqlite":
		statement = "PRAGMA optimize"
	case "postgres":
		statement = "ANALYZE " + entity.ToDoItem{}.TableName()
	default:
		return fmt.Errorf("no maintenance statement for dialect %s", dialect)
	}

	return gateway.DB.WithContext(ctx).Exec(statement).Error
}

func (gateway *GormStoreMaintenanceGateway) CountItems(ctx context.Context) (int64, error) {
	return NewGormToDoItemGateway(gateway.DB).CountAll(ctx)
}
