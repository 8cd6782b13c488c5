package db

import (
	"context"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormToDoItemGateway struct {
	DB *gorm.DB
}

var _ ToDoItemGateway = (*GormToDoItemGateway)(nil)

func NewGormToDoItemGateway(db *gorm.DB) *GormToDoItemGateway {
	return &GormToDoItemGateway{DB: db}
}

// Create inserts the item and returns it with the id assigned by the database.
// Any id already set on item is discarded.
func (gateway *GormToDoItemGateway) Create(ctx context.Context, item entity.ToDoItem) (*entity.ToDoItem, error) {
	item.ID = 0

	if err := gateway.DB.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, classifyWriteError(err)
	}

	return &item, nil
}

// FindAll returns every item ordered by id
func (gateway *GormToDoItemGateway) FindAll(ctx context.Context) ([]entity.ToDoItem, error) {
	items := make([]entity.ToDoItem, 0)

	if err := gateway.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (gateway *GormToDoItemGateway) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).Model(&entity.ToDoItem{}).Count(&count).Error
	return count, err
}

type GormUnitOfWork struct {
	DB *gorm.DB
}

var _ UnitOfWork = (*GormUnitOfWork)(nil)

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{DB: db}
}

// Execute delegates commit, rollback and panic handling to gorm's Transaction.
func (uow *GormUnitOfWork) Execute(ctx context.Context, work func(gateway ToDoItemGateway) error) error {
	return uow.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return work(NewGormToDoItemGateway(tx))
	})
}
