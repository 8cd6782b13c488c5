package db

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"

	"todo-api/internal/domain/model"
)

const healthPingTimeout = 2 * time.Second

type GormHealthDBGateway struct {
	DB *gorm.DB
}

var _ HealthDBGateway = (*GormHealthDBGateway)(nil)

func NewGormHealthDBGateway(db *gorm.DB) *GormHealthDBGateway {
	return &GormHealthDBGateway{DB: db}
}

func (gateway *GormHealthDBGateway) Health() model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return downStatus(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return downStatus(err)
	}

	stats := sqlDB.Stats()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message":          string(model.StatusUp),
			"dialect":          gateway.DB.Dialector.Name(),
			"open_connections": strconv.Itoa(stats.OpenConnections),
			"in_use":           strconv.Itoa(stats.InUse),
		},
	}
}

func downStatus(err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"message": err.Error(),
		},
	}
}
