package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// Field messages for values that could not be read from the request.
const (
	msgInvalidInteger = "value is not a valid integer"
	msgInvalidJSON    = "invalid JSON body"
	msgBodyTooLarge   = "request body too large"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Location: domain.LocationPath,
			Fields:   map[string]string{param: msgInvalidInteger},
		}
	}
	return id, nil
}

// parsePage reads the skip and limit query parameters. Absent parameters
// take their defaults; present ones must be integers. Sign checks are left
// to todo.Page.Validate.
func parsePage(r *http.Request) (todo.Page, error) {
	page := todo.DefaultPage()
	query := r.URL.Query()
	fields := make(map[string]string)

	if raw, ok := query["skip"]; ok && len(raw) > 0 {
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			fields["skip"] = msgInvalidInteger
		}
		page.Skip = v
	}
	if raw, ok := query["limit"]; ok && len(raw) > 0 {
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			fields["limit"] = msgInvalidInteger
		}
		page.Limit = v
	}

	if len(fields) > 0 {
		return todo.Page{}, &domain.ValidationError{Location: domain.LocationQuery, Fields: fields}
	}
	if err := page.Validate(); err != nil {
		return todo.Page{}, err
	}
	return page, nil
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// errTrailingData reports a body holding more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON value")

// decodeJSONBody decodes the request body as a single JSON value into dst.
// The body is limited to maxJSONBodyBytes and may only be followed by
// whitespace. On failure, it writes a 422 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		err = expectEOF(dec)
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Location: domain.LocationBody,
			Fields:   decodeErrorFields(err),
		})
		return false
	}
	return true
}

// expectEOF fails unless dec has nothing left but whitespace.
func expectEOF(dec *json.Decoder) error {
	err := dec.Decode(&struct{}{})
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return errTrailingData
	default:
		return err
	}
}

// decodeErrorFields describes a JSON decoding failure as validation fields.
// A wrong-typed value is reported against its field; anything else is
// reported against the body as a whole.
func decodeErrorFields(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	var sizeErr *http.MaxBytesError

	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return map[string]string{typeErr.Field: typeMessage(typeErr.Type)}
	case errors.Is(err, io.EOF):
		return map[string]string{"": domain.MsgRequired}
	case errors.As(err, &sizeErr):
		return map[string]string{"": msgBodyTooLarge}
	default:
		return map[string]string{"": msgInvalidJSON}
	}
}

// typeMessage names the JSON type a field expected.
func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "str type expected"
	case reflect.Bool:
		return "value could not be parsed to a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return msgInvalidInteger
	default:
		return "value is not a valid " + t.Kind().String()
	}
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
