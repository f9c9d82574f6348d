package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo CRUD operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every call runs inside exactly one storage session.
type TodoService interface {
	// ListTodos returns one page of todos in storage order.
	// Returns domain.ErrValidation if the page bounds are negative.
	ListTodos(ctx context.Context, page todo.Page) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo creates a new incomplete todo and returns it with its
	// assigned ID.
	CreateTodo(ctx context.Context, title string) (*todo.Todo, error)

	// UpdateTodo applies a partial update and returns the updated todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo deletes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}
