// Package server exposes the event store and the conflict detector over the
// JSON REST surface the calendar UI consumes.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iljeong-app/iljeong/storage"
)

const (
	headerContentType = "Content-Type"
	mimeTypeJSON      = "application/json; charset=utf-8"
	mimeTypeCalendar  = "text/calendar; charset=utf-8"
)

// New builds the HTTP handler for the event API, with request logging. A nil
// logger falls back to slog's default.
func New(store storage.EventStore, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := NewHandler(store, logger)
	r := mux.NewRouter()
	r.Use(loggingMiddleware(logger))
	h.RegisterRoutes(r)
	return r
}

func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			logger.Info("received request",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", req.RemoteAddr,
				"duration", time.Since(start))
		})
	}
}
