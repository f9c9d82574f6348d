// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoStore. Each
// operation opens exactly one storage session and performs its repository
// calls inside it.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// ListTodos returns one page of todos. Negative bounds are rejected before
// storage is touched.
func (s *TodoService) ListTodos(ctx context.Context, page todo.Page) ([]todo.Todo, error) {
	s.logger.DebugContext(ctx, "listing todos",
		slog.Int("skip", page.Skip),
		slog.Int("limit", page.Limit),
	)

	if err := page.Validate(); err != nil {
		return nil, err
	}

	var todos []todo.Todo
	err := s.store.WithSession(ctx, func(repo ports.TodoRepository) error {
		var err error
		todos, err = repo.List(ctx, page)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "ListTodos", err)
		return nil, err
	}

	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "fetching todo", slog.Int64("id", id))

	var td *todo.Todo
	err := s.store.WithSession(ctx, func(repo ports.TodoRepository) error {
		var err error
		td, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "GetTodo", err, slog.Int64("id", id))
		return nil, err
	}

	return td, nil
}

// CreateTodo stores a new incomplete todo. Any string, including the empty
// string, is an acceptable title.
func (s *TodoService) CreateTodo(ctx context.Context, title string) (*todo.Todo, error) {
	var created *todo.Todo
	err := s.store.WithSession(ctx, func(repo ports.TodoRepository) error {
		var err error
		created, err = repo.Create(ctx, title)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "CreateTodo", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo created", slog.Int64("id", created.ID))
	return created, nil
}

// UpdateTodo applies patch to the todo and returns the stored result.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	var updated *todo.Todo
	err := s.store.WithSession(ctx, func(repo ports.TodoRepository) error {
		var err error
		updated, err = repo.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "UpdateTodo", err, slog.Int64("id", id))
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo updated",
		slog.Int64("id", id),
		slog.Bool("title_changed", patch.Title != nil),
		slog.Bool("completion_changed", patch.IsComplete != nil),
	)
	return updated, nil
}

// DeleteTodo permanently removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	err := s.store.WithSession(ctx, func(repo ports.TodoRepository) error {
		return repo.Delete(ctx, id)
	})
	if err != nil {
		s.logFailure(ctx, "DeleteTodo", err, slog.Int64("id", id))
		return err
	}

	s.logger.InfoContext(ctx, "todo deleted", slog.Int64("id", id))
	return nil
}

// logFailure logs caller mistakes at warn and everything else at error.
func (s *TodoService) logFailure(ctx context.Context, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		level = slog.LevelWarn
	}

	attrs = append(attrs,
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	s.logger.LogAttrs(ctx, level, "todo operation failed", attrs...)
}
