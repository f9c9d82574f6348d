package middleware

import (
	"log/slog"
	"net/http"
	"testing"
)

func TestHeadersAttr(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Authorization", "Bearer abc.def.ghi")
	h.Set("Cookie", "session=1")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")

	attr := headersAttr(h)
	if attr.Key != "headers" {
		t.Fatalf("key = %q, want headers", attr.Key)
	}
	if attr.Value.Kind() != slog.KindGroup {
		t.Fatalf("kind = %v, want group", attr.Value.Kind())
	}

	group := attr.Value.Group()
	wantOrder := []string{"Accept", "Authorization", "Content-Type", "Cookie"}
	if len(group) != len(wantOrder) {
		t.Fatalf("got %d headers, want %d", len(group), len(wantOrder))
	}
	want := map[string]string{
		"Accept":        "application/json, text/plain",
		"Authorization": redacted,
		"Content-Type":  "application/json",
		"Cookie":        redacted,
	}
	for i, a := range group {
		if a.Key != wantOrder[i] {
			t.Errorf("header %d = %q, want %q", i, a.Key, wantOrder[i])
		}
		if got := a.Value.String(); got != want[a.Key] {
			t.Errorf("%s = %q, want %q", a.Key, got, want[a.Key])
		}
	}
}

func TestHeadersAttr_Empty(t *testing.T) {
	t.Parallel()

	if n := len(headersAttr(http.Header{}).Value.Group()); n != 0 {
		t.Errorf("got %d headers, want 0", n)
	}
}
