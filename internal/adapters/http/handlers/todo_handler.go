package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// TodoHandler handles HTTP requests for todo CRUD operations.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.svc.ListTodos(r.Context(), page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToTodoListResponse(todos))
}

// CreateTodo handles POST /todos. Responds 200 with the created todo.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTodo(r.Context(), *req.Title)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToTodoResponse(created))
}

// GetTodo handles GET /todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// UpdateTodo handles PUT /todos/{id}. Only the supplied fields change.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTodo(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.MessageResponse{Detail: dto.MsgTodoDeleted})
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteDetail(w, r, http.StatusNotFound, dto.MsgRouteNotFound)
}

// MethodNotAllowed answers requests whose path matches but method does not.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	dto.WriteDetail(w, r, http.StatusMethodNotAllowed, dto.MsgMethodNotAllowed)
}
