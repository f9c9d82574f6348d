package sqlite

import "github.com/jsamuelsen11/todo-service/internal/domain/todo"

const todoTable = "todos"

// todoRecord is the row layout of the todos table.
type todoRecord struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title      string `gorm:"column:title;not null;index"`
	IsComplete bool   `gorm:"column:is_complete;not null;default:false"`
}

// TableName pins the table name instead of relying on gorm's pluralization.
func (todoRecord) TableName() string {
	return todoTable
}

func (r *todoRecord) toDomain() *todo.Todo {
	return &todo.Todo{
		ID:         r.ID,
		Title:      r.Title,
		IsComplete: r.IsComplete,
	}
}
