package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adeqmish/ai-text-humanizer/internal/handler"
	"github.com/adeqmish/ai-text-humanizer/internal/middleware"
)

// DefaultMaxTextLength applies when Options.MaxTextLength is not set.
const DefaultMaxTextLength = 10000

// Options carries the request-independent settings of the HTTP surface.
type Options struct {
	Model         string
	AccessKey     string
	MaxTextLength int
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(h handler.Humanizer, opts Options) http.Handler {
	if opts.MaxTextLength <= 0 {
		opts.MaxTextLength = DefaultMaxTextLength
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health(h, opts.Model))
	mux.HandleFunc("/api/humanize", handler.Humanize(h, opts.MaxTextLength))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux, opts.AccessKey)
}
