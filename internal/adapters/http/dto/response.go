// Package dto provides HTTP request/response data transfer objects and the
// JSON error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/todo-service/internal/domain/todo"

// MsgTodoDeleted is the detail returned after a successful delete.
const MsgTodoDeleted = "Todo deleted successfully"

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	IsComplete bool   `json:"is_complete"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Detail string `json:"detail"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:         t.ID,
		Title:      t.Title,
		IsComplete: t.IsComplete,
	}
}

// ToTodoListResponse converts todos to a response array. The result is
// never nil, so an empty list encodes as [] rather than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// HealthResponse is the body of the liveness and readiness endpoints.
// Checks is only set on readiness and maps checker names to "ok" or the
// failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
