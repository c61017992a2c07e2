package server

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/user/taskboard-go/apperror"
	"github.com/user/taskboard-go/auth"
	"github.com/user/taskboard-go/logging"
)

// requestLogger stores a request-scoped logger (request_id, method, path) in the
// context and logs one line per completed request.
func requestLogger(base logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			log := base.With(
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			ctx := logging.WithLogger(r.Context(), log)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			log.Info(ctx, "request completed",
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}

// recoverer converts a panic in a handler into a 500 JSON response.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				logging.FromContext(r.Context()).Error(r.Context(), "panic recovered",
					"panic", rvr,
					"stack", string(debug.Stack()),
				)
				auth.WriteJSON(w, http.StatusInternalServerError, apperror.ErrorResponse{Message: apperror.MsgInternal})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
