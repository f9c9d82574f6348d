package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:         1,
		Title:      "Buy groceries",
		IsComplete: false,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// validationBody is the decoded form of a 422 response.
type validationBody struct {
	Detail []struct {
		Loc []string `json:"loc"`
		Msg string   `json:"msg"`
	} `json:"detail"`
}

// requireValidation checks for a 422 whose first detail points at loc.
func requireValidation(t *testing.T, rec *httptest.ResponseRecorder, loc ...string) validationBody {
	t.Helper()
	requireStatus(t, rec, http.StatusUnprocessableEntity)
	body := decodeJSON[validationBody](t, rec)
	if len(body.Detail) == 0 {
		t.Fatalf("detail is empty, want entry at %v", loc)
	}
	got := strings.Join(body.Detail[0].Loc, ".")
	if want := strings.Join(loc, "."); got != want {
		t.Errorf("loc = %q, want %q", got, want)
	}
	return body
}
