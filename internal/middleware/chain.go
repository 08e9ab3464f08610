package middleware

import (
	"net/http"
)

// maxBodyBytes caps request bodies; the text itself is limited separately.
const maxBodyBytes = 64 * 1024

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → AccessKey → MaxBytes → mux
// No timeout or rate-limit layer: a humanize call runs until the provider
// answers or the client goes away.
func Chain(handler http.Handler, accessKey string) http.Handler {
	h := handler
	h = MaxBytes(maxBodyBytes)(h)
	h = AccessKey(accessKey)(h)
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}
