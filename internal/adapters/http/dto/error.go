package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// Fixed messages for errors whose details are not exposed to clients.
const (
	MsgInternal         = "Internal Server Error"
	MsgUnavailable      = "Service Unavailable"
	MsgRouteNotFound    = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
)

// ErrorResponse is the body of every error response. Detail is either a
// human-readable message or, for validation failures, a []ErrorDetail.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ErrorDetail describes one invalid input value. Loc is the path to the
// value, starting with its location: ["body", "title"], ["query", "skip"].
type ErrorDetail struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// NewErrorResponse builds the response body and status code for err.
// Messages of unexpected errors are never copied into the body.
func NewErrorResponse(err error) (ErrorResponse, int) {
	status := domainErrorToStatus(err)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return ErrorResponse{Detail: validationFieldsToDetails(verr)}, status
	}

	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		return ErrorResponse{Detail: nf.Entity + " not found"}, status
	case status == http.StatusNotFound:
		return ErrorResponse{Detail: MsgRouteNotFound}, status
	case status == http.StatusServiceUnavailable:
		return ErrorResponse{Detail: MsgUnavailable}, status
	default:
		return ErrorResponse{Detail: MsgInternal}, status
	}
}

// WriteErrorResponse writes the JSON error response for err. Server-side
// failures are logged with the request-scoped logger before responding.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp, status := NewErrorResponse(err)

	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}

	writeError(w, r, status, resp)
}

// WriteDetail writes an error response with a plain message detail.
func WriteDetail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeError(w, r, status, ErrorResponse{Detail: msg})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	WriteJSON(w, r, status, resp)
}

// WriteJSON writes v as a JSON body with the given status. Encoding
// failures are logged with the request-scoped logger; the status has
// already been sent by then.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts validation fields to ErrorDetail entries
// sorted by field name. An empty field name refers to the location itself,
// such as a body that is not valid JSON.
func validationFieldsToDetails(verr *domain.ValidationError) []ErrorDetail {
	location := verr.Location
	if location == "" {
		location = domain.LocationBody
	}

	names := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	details := make([]ErrorDetail, 0, len(names))
	for _, field := range names {
		loc := []string{location}
		if field != "" {
			loc = append(loc, field)
		}
		details = append(details, ErrorDetail{
			Loc: loc,
			Msg: verr.Fields[field],
		})
	}
	return details
}
