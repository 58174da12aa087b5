// ABOUTME: Request logging transport with correlation IDs
// ABOUTME: Logs each outgoing request's method, path, status, and latency

package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation ID on outgoing requests
const RequestIDHeader = "X-Request-ID"

type requestLogger struct {
	base http.RoundTripper
}

// NewRequestLogger wraps base with request logging. A nil base uses
// http.DefaultTransport.
func NewRequestLogger(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &requestLogger{base: base}
}

// RoundTrip implements http.RoundTripper
func (l *requestLogger) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	tagged := req.Clone(req.Context())
	requestID := tagged.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		tagged.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := l.base.RoundTrip(tagged)
	if err != nil {
		slog.Debug("Request failed",
			"request_id", requestID,
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	slog.Debug("Request completed",
		"request_id", requestID,
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}
