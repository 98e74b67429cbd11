package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nauticalab/epiceditor-config/internal/logger"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a request logger tagged with the caller's trace ID,
// or a fresh one, and echoes the ID back in the response.
func withTraceID(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(traceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			l := base.With().Str("trace_id", traceID).Logger()
			r = r.WithContext(l.WithContext(r.Context()))

			w.Header().Set(traceIDHeader, traceID)
			next.ServeHTTP(w, r)
		})
	}
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		level := zerolog.InfoLevel
		if ww.Status() >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		log.WithLevel(level).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}
