package entity

// ToDoItem is a single task owned by a user. Rows are only ever inserted.
type ToDoItem struct {
	ID     int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Task   string `json:"task" gorm:"column:task;type:text;not null"`
	UserID int64  `json:"user_id" gorm:"column:user_id;not null"`
}

func (ToDoItem) TableName() string {
	return "todo_items"
}
