package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// RecoveryMiddleware converts handler panics into the generic 500 response.
func RecoveryMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Errorf("Panic recovered on %s %s: %v", r.Method, r.URL.Path, rec)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"message": "Server error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
