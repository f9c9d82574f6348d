package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds. Services wrap them; adapters map them to status codes with
// errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")
)

// Field error messages shared by request and entity validation.
const (
	MsgRequired    = "field required"
	MsgNonNegative = "must be a non-negative integer"
)

// Locations of a validated value within a request.
const (
	LocationBody  = "body"
	LocationQuery = "query"
	LocationPath  = "path"
)

// ValidationError lists rejected input fields with a message for each. It
// matches ErrValidation under errors.Is.
//
// Location names the part of the request the fields were read from
// (LocationBody, LocationQuery or LocationPath). An empty Location is
// treated as LocationBody.
type ValidationError struct {
	Location string
	Fields   map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports that no entity of the named kind exists for ID.
// It wraps ErrNotFound.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Entity, e.ID, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
