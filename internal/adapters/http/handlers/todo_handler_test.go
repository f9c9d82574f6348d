package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/mocks"
)

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(svc), svc
}

// --- ListTodos ---

func TestListTodos_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	todos := []todo.Todo{validTodo()}
	svc.EXPECT().ListTodos(mock.Anything, todo.DefaultPage()).Return(todos, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.TodoResponse](t, rec)
	if len(resp) != 1 || resp[0].Title != "Buy groceries" {
		t.Errorf("resp = %+v, want one todo", resp)
	}
}

func TestListTodos_Empty(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything, todo.DefaultPage()).Return([]todo.Todo{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want %q", got, "[]\n")
	}
}

func TestListTodos_WithPaging(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything, todo.Page{Skip: 5, Limit: 10}).Return(nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos?skip=5&limit=10", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestListTodos_InvalidQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "negative skip", query: "skip=-1", field: "skip"},
		{name: "negative limit", query: "limit=-5", field: "limit"},
		{name: "non-integer skip", query: "skip=abc", field: "skip"},
		{name: "non-integer limit", query: "limit=1.5", field: "limit"},
		{name: "empty limit", query: "limit=", field: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newTodoHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/todos?"+tt.query, nil)
			h.ListTodos(rec, req)

			requireValidation(t, rec, "query", tt.field)
		})
	}
}

func TestListTodos_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything, mock.Anything).Return(nil, errors.New("disk I/O error"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	resp := decodeJSON[dto.MessageResponse](t, rec)
	if resp.Detail != "Internal Server Error" {
		t.Errorf("detail = %q", resp.Detail)
	}
}

// --- CreateTodo ---

func TestCreateTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	created := validTodo()
	svc.EXPECT().CreateTodo(mock.Anything, "Buy groceries").Return(&created, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/todos", jsonBody(t, map[string]any{
		"title": "Buy groceries",
	}))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != 1 || resp.Title != "Buy groceries" || resp.IsComplete {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCreateTodo_EmptyTitleAccepted(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().CreateTodo(mock.Anything, "").Return(&todo.Todo{ID: 2}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/todos", rawBody(`{"title":""}`))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestCreateTodo_InvalidBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		loc  []string
		msg  string
	}{
		{name: "missing title", body: `{}`, loc: []string{"body", "title"}, msg: "field required"},
		{name: "null title", body: `{"title":null}`, loc: []string{"body", "title"}, msg: "field required"},
		{name: "numeric title", body: `{"title":5}`, loc: []string{"body", "title"}, msg: "str type expected"},
		{name: "malformed JSON", body: `{"title":`, loc: []string{"body"}, msg: "invalid JSON body"},
		{name: "empty body", body: ``, loc: []string{"body"}, msg: "field required"},
		{name: "array body", body: `["x"]`, loc: []string{"body"}, msg: "invalid JSON body"},
		{name: "trailing garbage", body: `{"title":"x"} garbage`, loc: []string{"body"}, msg: "invalid JSON body"},
		{name: "two objects", body: `{"title":"x"}{"title":"y"}`, loc: []string{"body"}, msg: "invalid JSON body"},
		{name: "unterminated second value", body: `{"title":"x"} {`, loc: []string{"body"}, msg: "invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newTodoHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/todos", rawBody(tt.body))
			h.CreateTodo(rec, req)

			body := requireValidation(t, rec, tt.loc...)
			if body.Detail[0].Msg != tt.msg {
				t.Errorf("msg = %q, want %q", body.Detail[0].Msg, tt.msg)
			}
		})
	}
}

// --- GetTodo ---

func TestGetTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	td := validTodo()
	svc.EXPECT().GetTodo(mock.Anything, int64(1)).Return(&td, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos/1", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestGetTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().GetTodo(mock.Anything, int64(42)).Return(nil, todo.NotFound(42))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos/42", nil)
	req = withChiParams(req, map[string]string{"id": "42"})
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	resp := decodeJSON[dto.MessageResponse](t, rec)
	if resp.Detail != "Todo not found" {
		t.Errorf("detail = %q, want %q", resp.Detail, "Todo not found")
	}
}

func TestGetTodo_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos/abc", nil)
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.GetTodo(rec, req)

	requireValidation(t, rec, "path", "id")
}

func TestGetTodo_Unavailable(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().GetTodo(mock.Anything, int64(1)).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos/1", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- UpdateTodo ---

func TestUpdateTodo_PartialFields(t *testing.T) {
	t.Parallel()

	complete := true
	title := "Updated"

	tests := []struct {
		name string
		body string
		want todo.Patch
	}{
		{name: "complete only", body: `{"is_complete":true}`, want: todo.Patch{IsComplete: &complete}},
		{name: "title only", body: `{"title":"Updated"}`, want: todo.Patch{Title: &title}},
		{name: "both", body: `{"title":"Updated","is_complete":true}`, want: todo.Patch{Title: &title, IsComplete: &complete}},
		{name: "neither", body: `{}`, want: todo.Patch{}},
		{name: "nulls", body: `{"title":null,"is_complete":null}`, want: todo.Patch{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTodoHandler(t)

			updated := validTodo()
			svc.EXPECT().UpdateTodo(mock.Anything, int64(1), tt.want).Return(&updated, nil)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/todos/1", rawBody(tt.body))
			req = withChiParams(req, map[string]string{"id": "1"})
			h.UpdateTodo(rec, req)

			requireStatus(t, rec, http.StatusOK)
		})
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().UpdateTodo(mock.Anything, int64(9), mock.Anything).Return(nil, todo.NotFound(9))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/todos/9", rawBody(`{"is_complete":true}`))
	req = withChiParams(req, map[string]string{"id": "9"})
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestCreateTodo_TrailingWhitespaceAccepted(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().CreateTodo(mock.Anything, "x").Return(&todo.Todo{ID: 3, Title: "x"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/todos", rawBody("{\"title\":\"x\"}\n\t "))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateTodo_TrailingData(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/todos/1", rawBody(`{"is_complete":true} true`))
	req = withChiParams(req, map[string]string{"id": "1"})
	h.UpdateTodo(rec, req)

	body := requireValidation(t, rec, "body")
	if body.Detail[0].Msg != "invalid JSON body" {
		t.Errorf("msg = %q", body.Detail[0].Msg)
	}
}

func TestUpdateTodo_WrongType(t *testing.T) {
	t.Parallel()

	// Only JSON booleans are accepted; boolean-looking strings and numbers
	// are rejected.
	for _, value := range []string{`"maybe"`, `"yes"`, `"true"`, `"1"`, `1`} {
		t.Run(value, func(t *testing.T) {
			t.Parallel()
			h, _ := newTodoHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/todos/1", rawBody(`{"is_complete":`+value+`}`))
			req = withChiParams(req, map[string]string{"id": "1"})
			h.UpdateTodo(rec, req)

			body := requireValidation(t, rec, "body", "is_complete")
			if body.Detail[0].Msg != "value could not be parsed to a boolean" {
				t.Errorf("msg = %q", body.Detail[0].Msg)
			}
		})
	}
}

func TestUpdateTodo_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/todos/x", rawBody(`{}`))
	req = withChiParams(req, map[string]string{"id": "x"})
	h.UpdateTodo(rec, req)

	requireValidation(t, rec, "path", "id")
}

// --- DeleteTodo ---

func TestDeleteTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteTodo(mock.Anything, int64(1)).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/todos/1", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MessageResponse](t, rec)
	if resp.Detail != "Todo deleted successfully" {
		t.Errorf("detail = %q", resp.Detail)
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteTodo(mock.Anything, int64(1)).Return(todo.NotFound(1))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/todos/1", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- fallbacks ---

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handlers.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	requireStatus(t, rec, http.StatusNotFound)
	if resp := decodeJSON[dto.MessageResponse](t, rec); resp.Detail != "Not Found" {
		t.Errorf("detail = %q", resp.Detail)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handlers.MethodNotAllowed(rec, httptest.NewRequest(http.MethodPatch, "/todos/1", nil))

	requireStatus(t, rec, http.StatusMethodNotAllowed)
}
