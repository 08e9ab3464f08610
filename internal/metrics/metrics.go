package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "humanizer_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// HumanizeDuration tracks provider round-trip latency by outcome.
	HumanizeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "humanizer_humanize_duration_seconds",
		Help:    "Time spent waiting on the text provider.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"outcome"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "humanizer_input_chars",
		Help:    "Number of characters in humanize input text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// FailuresTotal counts humanize failures by the status reported to the caller.
	FailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "humanizer_failures_total",
		Help: "Humanize failures by reported HTTP status.",
	}, []string{"status"})

	// ProviderConfigured is 1 when a provider credential is loaded.
	ProviderConfigured = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "humanizer_provider_configured",
		Help: "Whether the text provider has a credential (1) or not (0).",
	})
)
