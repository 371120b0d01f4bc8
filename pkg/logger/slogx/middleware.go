package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// LoggingMiddleware logs every request with a generated request id, the
// response status and the handling duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		logger := Default().With(
			RequestID(uuid.NewString()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		logger.Info(r.Context(), "start handling request")

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		durAttr := slog.Duration("duration", time.Since(start))
		statusAttr := slog.Int("status", sw.status)

		if sw.status >= http.StatusInternalServerError {
			logger.Error(r.Context(), "finish with error", statusAttr, durAttr)
		} else {
			logger.Info(r.Context(), "finish success", statusAttr, durAttr)
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
