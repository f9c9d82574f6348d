package dto

import (
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// CreateTodoRequest represents the JSON body for creating a todo. Title is a
// pointer so that a missing or null title can be told apart from "".
type CreateTodoRequest struct {
	Title *string `json:"title"`
}

// Validate checks that the title was supplied. Any string, including the
// empty string, is accepted.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	if r.Title == nil {
		return &domain.ValidationError{
			Location: domain.LocationBody,
			Fields:   map[string]string{"title": domain.MsgRequired},
		}
	}
	return nil
}

// UpdateTodoRequest represents the JSON body for updating a todo.
// Both fields are optional; a missing or null field means "do not change".
type UpdateTodoRequest struct {
	Title      *string `json:"title,omitempty"`
	IsComplete *bool   `json:"is_complete,omitempty"`
}

// Validate accepts every combination of supplied fields, including none.
func (r *UpdateTodoRequest) Validate() error {
	return nil
}

// ToPatch converts the request into a domain patch.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	return todo.Patch{
		Title:      r.Title,
		IsComplete: r.IsComplete,
	}
}
