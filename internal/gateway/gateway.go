// Package gateway turns raw text into a humanized rewrite by calling the
// configured provider once with the fixed system directive. Every call
// resolves to a Result; provider faults never escape as errors or panics.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adeqmish/ai-text-humanizer/internal/metrics"
	"github.com/adeqmish/ai-text-humanizer/internal/prompt"
	"github.com/adeqmish/ai-text-humanizer/internal/provider"
)

// Failure messages that are matched by callers and tests.
const (
	MsgMissingKey          = "Server configuration error: API key is missing."
	MsgProviderUnavailable = "Server configuration error: the text provider could not be initialized."
	MsgEmptyText           = `Invalid request: "text" must not be empty.`
	MsgEmptyResponse       = "The text provider returned an empty response."
)

// Failure describes why a humanize call did not produce text.
// Status is the HTTP status reported to the caller.
type Failure struct {
	Status  int
	Message string
	Details any
	Cause   error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Cause }

// Result is the outcome of Humanize: Text on success, Failure otherwise.
type Result struct {
	Text    string
	Failure *Failure
}

// OK reports whether the result carries humanized text.
func (r Result) OK() bool { return r.Failure == nil }

type Gateway struct {
	provider provider.Provider
	setupErr error
	prompt   string
	logger   *slog.Logger
}

type Option func(*Gateway)

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// WithPrompt replaces the system directive. Intended for tests.
func WithPrompt(p string) Option {
	return func(g *Gateway) { g.prompt = p }
}

// WithSetupError records why no provider could be built. Calls then
// report the provider as unavailable instead of the key as missing.
func WithSetupError(err error) Option {
	return func(g *Gateway) { g.setupErr = err }
}

// New returns a Gateway bound to p. A nil p means no credential was
// configured; every call then fails with a configuration error.
func New(p provider.Provider, opts ...Option) *Gateway {
	g := &Gateway{
		provider: p,
		prompt:   prompt.System,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.provider != nil {
		metrics.ProviderConfigured.Set(1)
	} else {
		metrics.ProviderConfigured.Set(0)
	}
	return g
}

// Configured reports whether a provider is available.
func (g *Gateway) Configured() bool { return g.provider != nil }

// ConfigFailure returns the failure reported while no provider is
// configured. It is logged and counted like any other failure.
func (g *Gateway) ConfigFailure() Result {
	if g.setupErr != nil {
		return g.fail(&Failure{Status: http.StatusInternalServerError, Message: MsgProviderUnavailable, Cause: g.setupErr})
	}
	return g.fail(&Failure{Status: http.StatusInternalServerError, Message: MsgMissingKey})
}

func (g *Gateway) Humanize(ctx context.Context, text string) (res Result) {
	if g.provider == nil {
		return g.ConfigFailure()
	}
	if strings.TrimSpace(text) == "" {
		return g.fail(&Failure{Status: http.StatusBadRequest, Message: MsgEmptyText})
	}

	metrics.InputChars.Observe(float64(utf8.RuneCountInString(text)))

	start := time.Now()
	defer func() {
		outcome := "success"
		if !res.OK() {
			outcome = "failure"
		}
		metrics.HumanizeDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()
	defer func() {
		if r := recover(); r != nil {
			res = g.fail(&Failure{
				Status:  http.StatusInternalServerError,
				Message: fmt.Sprintf("An unexpected error occurred: %v", r),
				Cause:   fmt.Errorf("provider panic: %v", r),
			})
		}
	}()

	out, err := g.provider.Generate(ctx, g.prompt, text)
	if err != nil {
		return g.fail(classify(err))
	}
	if out == "" {
		return g.fail(&Failure{Status: http.StatusInternalServerError, Message: MsgEmptyResponse})
	}
	return Result{Text: out}
}

// classify maps a provider error onto the status reported to the caller.
// Only 400, 403 and 429 are passed through; everything else is a 500.
func classify(err error) *Failure {
	var perr *provider.Error
	if errors.As(err, &perr) {
		switch perr.StatusCode {
		case http.StatusBadRequest:
			return &Failure{
				Status:  http.StatusBadRequest,
				Message: "Provider rejected the request (bad request): " + perr.Message,
				Details: perr.Details,
				Cause:   err,
			}
		case http.StatusForbidden:
			return &Failure{
				Status:  http.StatusForbidden,
				Message: "Provider denied the request: permission denied or billing not enabled. " + perr.Message,
				Details: perr.Details,
				Cause:   err,
			}
		case http.StatusTooManyRequests:
			return &Failure{
				Status:  http.StatusTooManyRequests,
				Message: "Provider rate limit exceeded: too many requests, retry later. " + perr.Message,
				Details: perr.Details,
				Cause:   err,
			}
		}
	}
	return &Failure{
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("An unexpected error occurred: %v", err),
		Cause:   err,
	}
}

func (g *Gateway) fail(f *Failure) Result {
	metrics.FailuresTotal.WithLabelValues(strconv.Itoa(f.Status)).Inc()
	attrs := []any{"status", f.Status, "message", f.Message}
	if f.Cause != nil {
		attrs = append(attrs, "cause", f.Cause)
	}
	if f.Status >= http.StatusInternalServerError {
		g.logger.Error("humanize failed", attrs...)
	} else {
		g.logger.Warn("humanize failed", attrs...)
	}
	return Result{Failure: f}
}
