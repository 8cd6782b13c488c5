package model

import (
	"time"

	"todo-api/internal/domain/entity"
)

// CreateToDoItemDTO is the writable part of a ToDo item. Pointers tell a missing
// field apart from its zero value.
type CreateToDoItemDTO struct {
	Task   *string `json:"task" validate:"required"`
	UserID *int64  `json:"user_id" validate:"required"`
}

// ToDoItemCreatedEvent is published once a created item has been committed.
type ToDoItemCreatedEvent struct {
	EventID    string          `json:"eventId"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Item       entity.ToDoItem `json:"item"`
}

const ToDoItemCreatedEventType = "todo-item.created"
