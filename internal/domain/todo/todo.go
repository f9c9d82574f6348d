// Package todo holds the Todo entity and the value types used to list and
// partially update it.
package todo

import "github.com/jsamuelsen11/todo-service/internal/domain"

// EntityName identifies the Todo entity in not-found errors and messages.
const EntityName = "Todo"

// Todo represents a single task item. ID is assigned by storage on creation
// and never changes afterwards.
type Todo struct {
	ID         int64
	Title      string
	IsComplete bool
}

// NotFound returns the error reported when no Todo exists for id.
func NotFound(id int64) error {
	return &domain.NotFoundError{Entity: EntityName, ID: id}
}

// Patch carries the mutable fields of a partial update.
// A nil field means "do not change this field".
type Patch struct {
	Title      *string
	IsComplete *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.IsComplete == nil
}

// Apply overwrites the supplied fields of t. Unsupplied fields keep their
// current value.
func (p Patch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.IsComplete != nil {
		t.IsComplete = *p.IsComplete
	}
}
