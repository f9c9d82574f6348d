package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

const msgGatewayTimeout = "Gateway Timeout"

// Timeout bounds each request to d. The handler runs in its own goroutine
// with a context carrying the deadline, so storage calls give up with it.
// Its response is buffered and sent once it returns. If the deadline passes
// first the client gets 504 {"detail":"Gateway Timeout"} straight away and
// later writes by the handler fail with http.ErrHandlerTimeout. Timeout
// still returns only after the handler does, since chi's route context is
// shared with it. A panic in the handler is re-raised on the serving
// goroutine for Recovery to handle.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := newBufferedResponse()
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				buf.sendTo(w)
			case <-ctx.Done():
				buf.abandon()
				dto.WriteDetail(w, r, http.StatusGatewayTimeout, msgGatewayTimeout)
				_ = http.NewResponseController(w).Flush()
				select {
				case v := <-panicked:
					panic(v)
				case <-done:
				}
			}
		})
	}
}

// bufferedResponse holds a handler's response until Timeout decides whether
// to send it. The header map is only read after the handler has returned.
type bufferedResponse struct {
	header http.Header

	mu        sync.Mutex
	status    int
	body      bytes.Buffer
	abandoned bool
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header)}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.abandoned || b.status != 0 {
		return
	}
	b.status = code
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// abandon makes every later write fail.
func (b *bufferedResponse) abandon() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandoned = true
}

// sendTo copies the buffered response to w. A handler that wrote nothing
// leaves the status to net/http's implicit 200.
func (b *bufferedResponse) sendTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
