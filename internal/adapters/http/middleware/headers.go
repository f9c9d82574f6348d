package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// headersAttr groups the request headers under "headers" in sorted order.
// Headers listed in logging.SensitiveHeaders are masked; repeated headers
// are joined with ", ".
func headersAttr(h http.Header) slog.Attr {
	names := slices.Sorted(maps.Keys(h))
	attrs := make([]any, 0, len(names))
	for _, name := range names {
		value := strings.Join(h[name], ", ")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}
