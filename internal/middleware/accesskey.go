package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/adeqmish/ai-text-humanizer/internal/handler"
)

// AccessKey guards the API with a shared secret in the X-API-Key header.
// An empty key disables the check. /api/health and /metrics stay open so
// monitoring works without credentials.
func AccessKey(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" || r.URL.Path == "/api/health" || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get("X-API-Key")
			switch {
			case provided == "":
				handler.WriteError(w, http.StatusUnauthorized, "missing API key")
			case subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1:
				handler.WriteError(w, http.StatusUnauthorized, "invalid API key")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
