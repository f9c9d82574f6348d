// Package http is the inbound HTTP adapter: the chi router exposing the todo
// and health endpoints, and the server that runs it.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
)

// NewRouter returns the service's routes behind middlewares, outermost
// first; middleware.Stack builds the usual set. Unknown paths and
// unsupported methods answer with JSON error bodies.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	mountHealth(r, healthHandler)
	mountTodos(r, todoHandler)

	return r
}

func mountHealth(r chi.Router, h *handlers.HealthHandler) {
	r.Get("/health/live", h.Liveness)
	r.Get("/health/ready", h.Readiness)
}

func mountTodos(r chi.Router, h *handlers.TodoHandler) {
	r.Get("/todos", h.ListTodos)
	r.Post("/todos", h.CreateTodo)
	r.Get("/todos/{id}", h.GetTodo)
	r.Put("/todos/{id}", h.UpdateTodo)
	r.Delete("/todos/{id}", h.DeleteTodo)
}
