package todo

import "github.com/jsamuelsen11/todo-service/internal/domain"

// DefaultLimit is the page size used when the caller does not supply one.
// No upper bound is enforced on caller-supplied limits.
const DefaultLimit = 100

// Page selects a window of todos in storage order: the first Skip entries
// are skipped and at most Limit entries are returned.
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage returns the page used when no query parameters are given.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

// Validate checks that both bounds are non-negative.
// Returns a *domain.ValidationError located in the query string.
func (p Page) Validate() error {
	fields := make(map[string]string)

	if p.Skip < 0 {
		fields["skip"] = domain.MsgNonNegative
	}
	if p.Limit < 0 {
		fields["limit"] = domain.MsgNonNegative
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Location: domain.LocationQuery, Fields: fields}
	}
	return nil
}
