package todo

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
	if verr.Location != domain.LocationQuery {
		t.Errorf("ValidationError.Location = %q, want %q", verr.Location, domain.LocationQuery)
	}
}

func TestPatch_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		patch Patch
		want  Todo
	}{
		{
			name:  "empty patch leaves todo unchanged",
			patch: Patch{},
			want:  Todo{ID: 1, Title: "Buy milk", IsComplete: false},
		},
		{
			name:  "title only keeps completion flag",
			patch: Patch{Title: strPtr("Buy bread")},
			want:  Todo{ID: 1, Title: "Buy bread", IsComplete: false},
		},
		{
			name:  "completion only keeps title",
			patch: Patch{IsComplete: boolPtr(true)},
			want:  Todo{ID: 1, Title: "Buy milk", IsComplete: true},
		},
		{
			name:  "both fields",
			patch: Patch{Title: strPtr(""), IsComplete: boolPtr(true)},
			want:  Todo{ID: 1, Title: "", IsComplete: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Todo{ID: 1, Title: "Buy milk"}
			tt.patch.Apply(&got)
			if got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPatch_ApplyCanResetCompletion(t *testing.T) {
	t.Parallel()

	got := Todo{ID: 3, Title: "Ship it", IsComplete: true}
	Patch{IsComplete: boolPtr(false)}.Apply(&got)

	if got.IsComplete {
		t.Error("IsComplete = true, want false after explicit reset")
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(Patch{}).IsEmpty() {
		t.Error("Patch{}.IsEmpty() = false, want true")
	}
	if (Patch{Title: strPtr("x")}).IsEmpty() {
		t.Error("IsEmpty() = true with title set, want false")
	}
	if (Patch{IsComplete: boolPtr(false)}).IsEmpty() {
		t.Error("IsEmpty() = true with is_complete=false set, want false")
	}
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      Page
		wantErr   bool
		wantField string
	}{
		{name: "default page passes", page: DefaultPage()},
		{name: "zero limit passes", page: Page{Skip: 0, Limit: 0}},
		{name: "large limit passes", page: Page{Skip: 5, Limit: 1_000_000}},
		{name: "negative skip fails", page: Page{Skip: -1, Limit: 10}, wantErr: true, wantField: "skip"},
		{name: "negative limit fails", page: Page{Skip: 0, Limit: -5}, wantErr: true, wantField: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.page.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestDefaultPage(t *testing.T) {
	t.Parallel()

	if got := DefaultPage(); got.Skip != 0 || got.Limit != DefaultLimit {
		t.Errorf("DefaultPage() = %+v, want {Skip:0 Limit:%d}", got, DefaultLimit)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	err := NotFound(999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("errors.Is(err, ErrNotFound) = false, got %v", err)
	}

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("errors.As(err, *NotFoundError) = false, got %T", err)
	}
	if nf.Entity != EntityName || nf.ID != 999 {
		t.Errorf("NotFoundError = %+v, want Entity=%q ID=999", nf, EntityName)
	}
}
