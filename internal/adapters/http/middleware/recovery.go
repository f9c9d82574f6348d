package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

// Recovery turns a handler panic into 500 {"detail":"Internal Server Error"}
// and logs the panic value with its stack. The panic value never reaches the
// client. When the handler had already started its response only the log
// line is written. http.ErrAbortHandler is re-raised so net/http can abort
// the connection as usual.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "handler panicked",
					slog.Any("panic", v),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				if !rec.started() {
					dto.WriteDetail(rec, r, http.StatusInternalServerError, dto.MsgInternal)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
