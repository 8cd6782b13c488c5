package todo

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	// Create stores a new item in its own unit of work. It returns model.ErrMissingFields
	// when task or user_id is absent and *model.ConflictError when a table constraint
	// rejects the row.
	Create(ctx context.Context, dto model.CreateToDoItemDTO) (*entity.ToDoItem, error)
	FindAll(ctx context.Context) ([]entity.ToDoItem, error)
}
