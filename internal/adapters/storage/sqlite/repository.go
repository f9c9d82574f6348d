package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.TodoRepository = (*repository)(nil)

// repository runs todo queries on the connection pinned by one session.
type repository struct {
	db *gorm.DB
}

// List returns todos ordered by id, which is insertion order because ids
// are assigned by AUTOINCREMENT.
func (r *repository) List(ctx context.Context, page todo.Page) ([]todo.Todo, error) {
	var records []todoRecord
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	todos := make([]todo.Todo, len(records))
	for i := range records {
		todos[i] = *records[i].toDomain()
	}
	return todos, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	rec, err := r.find(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

// Create inserts an incomplete todo. The statement auto-commits.
func (r *repository) Create(ctx context.Context, title string) (*todo.Todo, error) {
	rec := todoRecord{Title: title, IsComplete: false}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}
	return rec.toDomain(), nil
}

// Update reads the row, applies the patch to it and writes the result back
// in one transaction. The transaction commits only if both steps succeed.
// An empty patch returns the row unchanged without writing.
func (r *repository) Update(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	var updated *todo.Todo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := r.find(tx, id)
		if err != nil {
			return err
		}
		updated = rec.toDomain()
		if patch.IsEmpty() {
			return nil
		}

		patch.Apply(updated)
		res := tx.Model(&todoRecord{}).Where("id = ?", id).Updates(map[string]any{
			"title":       updated.Title,
			"is_complete": updated.IsComplete,
		})
		if res.Error != nil {
			return fmt.Errorf("updating todo %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return todo.NotFound(id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the row with a single auto-committed statement.
func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&todoRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting todo %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return todo.NotFound(id)
	}
	return nil
}

func (r *repository) find(db *gorm.DB, id int64) (*todoRecord, error) {
	var rec todoRecord
	err := db.Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, todo.NotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching todo %d: %w", id, err)
	}
	return &rec, nil
}
