package middleware

import (
	"net/http"
	"strconv"

	"github.com/adeqmish/ai-text-humanizer/internal/metrics"
)

var knownPaths = map[string]bool{
	"/api/humanize": true,
	"/api/health":   true,
	"/metrics":      true,
}

// Metrics records request count by method, path, and status code.
// Unknown paths share one label so scanners cannot blow up cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		path := r.URL.Path
		if !knownPaths[path] {
			path = "other"
		}
		metrics.RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).Inc()
	})
}
