package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRepository is the session-scoped view of todo storage. A value is only
// valid inside the TodoStore.WithSession callback that produced it.
// Absent entities are reported as *domain.NotFoundError, never as nil results.
type TodoRepository interface {
	// List returns todos in storage (insertion) order, skipping page.Skip
	// entries and returning at most page.Limit. Returns an empty slice when
	// nothing matches.
	List(ctx context.Context, page todo.Page) ([]todo.Todo, error)

	// Get returns the todo with the given ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create inserts a new, incomplete todo and returns it with its
	// storage-assigned ID.
	Create(ctx context.Context, title string) (*todo.Todo, error)

	// Update overwrites only the fields supplied in patch and returns the
	// stored result. An empty patch returns the todo unchanged.
	// Returns domain.ErrNotFound if the todo does not exist.
	Update(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// Delete removes the todo permanently.
	// Returns domain.ErrNotFound if the todo does not exist.
	Delete(ctx context.Context, id int64) error
}

// TodoStore hands out storage sessions. Implemented by the storage adapters;
// called by the application layer once per operation.
type TodoStore interface {
	// WithSession acquires a session, passes its repository to fn and
	// releases the session when fn returns, on every path. The error
	// returned by fn is returned unchanged unless acquiring the session
	// itself failed.
	WithSession(ctx context.Context, fn func(TodoRepository) error) error
}
