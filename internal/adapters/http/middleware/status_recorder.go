package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced so
// Recovery, OpenTelemetry and Logging can read them after it returns.
type statusRecorder struct {
	http.ResponseWriter
	status int // 0 until the response starts
	bytes  int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// WriteHeader forwards the first status only.
func (s *statusRecorder) WriteHeader(code int) {
	if s.status != 0 {
		return
	}
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// started reports whether the status line has been sent.
func (s *statusRecorder) started() bool {
	return s.status != 0
}

// code is the response status, 200 for a handler that wrote nothing.
func (s *statusRecorder) code() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
