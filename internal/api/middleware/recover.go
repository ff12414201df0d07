package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Recover converts a handler panic into a generic 500. Panic detail is
// included in the response only in development mode; production callers
// get the bare error.
func Recover(logger *zap.Logger, development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("handler panic",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.String("request_id", RequestIDFromContext(r.Context())),
					)
					msg := "Internal server error"
					if development {
						msg = fmt.Sprintf("Internal server error: %v", rec)
					}
					writeError(w, http.StatusInternalServerError, msg)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
