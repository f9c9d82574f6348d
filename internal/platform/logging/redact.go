package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values never
// reach a log line. The request logging middleware masks them when it dumps
// headers, and the redactor masks attributes that carry the same names.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
}

// Attribute keys masked wherever they appear.
var (
	sensitiveKeys        = []string{"password", "secret", "token"}
	sensitiveKeyPrefixes = []string{"secret_", "api_key"}
)

// Values masked regardless of their key: bearer credentials, JWTs (three
// base64url segments of at least 10 characters) and inline api keys.
var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// redactor builds the masq ReplaceAttr hook installed by New.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveKeys)+len(sensitiveKeyPrefixes)+len(sensitiveValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, key := range sensitiveKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	for _, prefix := range sensitiveKeyPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
