package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

// ToDoItemGateway reads and writes ToDo items. Implementations handed out by a
// UnitOfWork are bound to that unit's transaction.
type ToDoItemGateway interface {
	Create(ctx context.Context, item entity.ToDoItem) (*entity.ToDoItem, error)
	FindAll(ctx context.Context) ([]entity.ToDoItem, error)
	CountAll(ctx context.Context) (int64, error)
}

// UnitOfWork runs work inside one transaction: committed when work returns nil,
// rolled back when it returns an error or panics.
type UnitOfWork interface {
	Execute(ctx context.Context, work func(gateway ToDoItemGateway) error) error
}
