package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/adeqmish/ai-text-humanizer/internal/gateway"
	"github.com/adeqmish/ai-text-humanizer/internal/metrics"
	"github.com/adeqmish/ai-text-humanizer/internal/provider"
)

type stubProvider struct {
	out   string
	err   error
	calls int
}

func (s *stubProvider) Generate(ctx context.Context, prompt, text string) (string, error) {
	s.calls++
	return s.out, s.err
}

func newGateway(p provider.Provider) *gateway.Gateway {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.New(p, gateway.WithLogger(logger))
}

func doHumanize(t *testing.T, h http.Handler, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/api/humanize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

func TestHandleHumanizeSuccess(t *testing.T) {
	p := &stubProvider{out: "Honestly? The cat just... sat there."}
	h := Humanize(newGateway(p), 10000)

	w := doHumanize(t, h, http.MethodPost, `{"text":"The cat sat."}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: got %q", ct)
	}

	var resp humanizeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.HumanizedText != "Honestly? The cat just... sat there." {
		t.Errorf("humanizedText: got %q", resp.HumanizedText)
	}
}

func TestHandleHumanizeErrors(t *testing.T) {
	tests := []struct {
		name        string
		provider    provider.Provider
		method      string
		body        string
		wantCode    int
		wantContain string
		wantCalls   int
	}{
		{
			name:        "wrong method",
			provider:    &stubProvider{out: "x"},
			method:      http.MethodGet,
			wantCode:    http.StatusMethodNotAllowed,
			wantContain: "Method Not Allowed",
		},
		{
			name:        "missing credential",
			provider:    nil,
			method:      http.MethodPost,
			body:        `{"text":"hello"}`,
			wantCode:    http.StatusInternalServerError,
			wantContain: "API key is missing",
		},
		{
			name:        "missing credential with bad body",
			provider:    nil,
			method:      http.MethodPost,
			body:        `{invalid`,
			wantCode:    http.StatusInternalServerError,
			wantContain: "API key is missing",
		},
		{
			name:        "invalid json",
			provider:    &stubProvider{out: "x"},
			method:      http.MethodPost,
			body:        `{invalid`,
			wantCode:    http.StatusBadRequest,
			wantContain: "malformed JSON",
		},
		{
			name:        "missing text",
			provider:    &stubProvider{out: "x"},
			method:      http.MethodPost,
			body:        `{}`,
			wantCode:    http.StatusBadRequest,
			wantContain: `"text" parameter is required`,
		},
		{
			name:        "null text",
			provider:    &stubProvider{out: "x"},
			method:      http.MethodPost,
			body:        `{"text":null}`,
			wantCode:    http.StatusBadRequest,
			wantContain: `"text" parameter is required`,
		},
		{
			name:        "non-string text",
			provider:    &stubProvider{out: "x"},
			method:      http.MethodPost,
			body:        `{"text":42}`,
			wantCode:    http.StatusBadRequest,
			wantContain: "must be a string",
		},
		{
			name:        "empty text",
			provider:    &stubProvider{out: "x"},
			method:      http.MethodPost,
			body:        `{"text":""}`,
			wantCode:    http.StatusBadRequest,
			wantContain: `"text" parameter is required`,
		},
		{
			name:        "whitespace text",
			provider:    &stubProvider{out: "x"},
			method:      http.MethodPost,
			body:        `{"text":"   "}`,
			wantCode:    http.StatusBadRequest,
			wantContain: "must not be empty",
		},
		{
			name:        "empty provider response",
			provider:    &stubProvider{out: ""},
			method:      http.MethodPost,
			body:        `{"text":"hello"}`,
			wantCode:    http.StatusInternalServerError,
			wantContain: "empty response",
			wantCalls:   1,
		},
		{
			name:        "provider bad request",
			provider:    &stubProvider{err: &provider.Error{StatusCode: 400, Message: "bad"}},
			method:      http.MethodPost,
			body:        `{"text":"hello"}`,
			wantCode:    http.StatusBadRequest,
			wantContain: "bad request",
			wantCalls:   1,
		},
		{
			name:        "provider forbidden",
			provider:    &stubProvider{err: &provider.Error{StatusCode: 403, Message: "denied"}},
			method:      http.MethodPost,
			body:        `{"text":"hello"}`,
			wantCode:    http.StatusForbidden,
			wantContain: "billing",
			wantCalls:   1,
		},
		{
			name:        "provider rate limited",
			provider:    &stubProvider{err: &provider.Error{StatusCode: 429, Message: "quota"}},
			method:      http.MethodPost,
			body:        `{"text":"hello"}`,
			wantCode:    http.StatusTooManyRequests,
			wantContain: "rate limit",
			wantCalls:   1,
		},
		{
			name:        "provider unavailable",
			provider:    &stubProvider{err: &provider.Error{StatusCode: 503, Message: "overloaded"}},
			method:      http.MethodPost,
			body:        `{"text":"hello"}`,
			wantCode:    http.StatusInternalServerError,
			wantContain: "unexpected error",
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Humanize(newGateway(tt.provider), 10000)
			w := doHumanize(t, h, tt.method, tt.body)

			if w.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", w.Code, tt.wantCode)
			}
			resp := decodeError(t, w)
			if !strings.Contains(resp.Error.Message, tt.wantContain) {
				t.Errorf("message: got %q, want to contain %q", resp.Error.Message, tt.wantContain)
			}
			if sp, ok := tt.provider.(*stubProvider); ok && sp.calls != tt.wantCalls {
				t.Errorf("provider calls: got %d, want %d", sp.calls, tt.wantCalls)
			}
		})
	}
}

func TestHandleHumanizeUnconfiguredIsLoggedAndCounted(t *testing.T) {
	tests := []struct {
		name        string
		opts        []gateway.Option
		wantMessage string
	}{
		{"missing key", nil, gateway.MsgMissingKey},
		{"provider setup failed", []gateway.Option{gateway.WithSetupError(errors.New("bad base url"))}, gateway.MsgProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := append([]gateway.Option{gateway.WithLogger(slog.New(slog.NewTextHandler(&buf, nil)))}, tt.opts...)
			h := Humanize(gateway.New(nil, opts...), 10000)
			before := testutil.ToFloat64(metrics.FailuresTotal.WithLabelValues("500"))

			w := doHumanize(t, h, http.MethodPost, `not json`)

			if w.Code != http.StatusInternalServerError {
				t.Errorf("status: got %d, want %d", w.Code, http.StatusInternalServerError)
			}
			if resp := decodeError(t, w); resp.Error.Message != tt.wantMessage {
				t.Errorf("message: got %q, want %q", resp.Error.Message, tt.wantMessage)
			}
			if got := testutil.ToFloat64(metrics.FailuresTotal.WithLabelValues("500")); got != before+1 {
				t.Errorf("failures counter: got %f, want %f", got, before+1)
			}
			if !strings.Contains(buf.String(), "humanize failed") {
				t.Errorf("failure not logged, got %q", buf.String())
			}
		})
	}
}

func TestHandleHumanizeErrorDetails(t *testing.T) {
	p := &stubProvider{err: &provider.Error{
		StatusCode: 400,
		Message:    "API key not valid",
		Details:    []map[string]any{{"reason": "API_KEY_INVALID"}},
	}}
	h := Humanize(newGateway(p), 10000)

	w := doHumanize(t, h, http.MethodPost, `{"text":"hello"}`)

	var raw map[string]map[string]any
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	details, ok := raw["error"]["details"].([]any)
	if !ok || len(details) != 1 {
		t.Fatalf("details: got %#v", raw["error"]["details"])
	}
}

func TestHandleHumanizeOmitsEmptyDetails(t *testing.T) {
	h := Humanize(newGateway(&stubProvider{out: ""}), 10000)
	w := doHumanize(t, h, http.MethodPost, `{"text":"hello"}`)

	if strings.Contains(w.Body.String(), "details") {
		t.Errorf("body should not carry details: %s", w.Body.String())
	}
}

func TestHandleHumanizeTextTooLong(t *testing.T) {
	p := &stubProvider{out: "ok"}
	h := Humanize(newGateway(p), 10)

	t.Run("over limit", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"text": strings.Repeat("a", 11)})
		w := doHumanize(t, h, http.MethodPost, string(body))

		if w.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
		}
		if resp := decodeError(t, w); !strings.Contains(resp.Error.Message, "too long") {
			t.Errorf("message: got %q, want to contain 'too long'", resp.Error.Message)
		}
	})

	t.Run("at limit counts runes", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"text": strings.Repeat("é", 10)})
		w := doHumanize(t, h, http.MethodPost, string(body))

		if w.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
		}
	})
}

func TestHandleHumanizeBodyTooLarge(t *testing.T) {
	h := Humanize(newGateway(&stubProvider{out: "ok"}), 10000)

	payload := `{"text":"` + strings.Repeat("x", 2048) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/humanize", bytes.NewReader([]byte(payload)))
	w := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(w, req.Body, 64)

	h.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name           string
		provider       provider.Provider
		wantConfigured bool
		wantReason     string
	}{
		{"configured", &stubProvider{}, true, ""},
		{"no credential", nil, false, "no API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			w := httptest.NewRecorder()

			Health(newGateway(tt.provider), "gemini-test").ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
			}
			var resp healthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != "ok" {
				t.Errorf("status: got %q, want %q", resp.Status, "ok")
			}
			if resp.Provider.Model != "gemini-test" {
				t.Errorf("model: got %q, want %q", resp.Provider.Model, "gemini-test")
			}
			if resp.Provider.Configured != tt.wantConfigured {
				t.Errorf("configured: got %v, want %v", resp.Provider.Configured, tt.wantConfigured)
			}
			if resp.Provider.Reason != tt.wantReason {
				t.Errorf("reason: got %q, want %q", resp.Provider.Reason, tt.wantReason)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusUnauthorized, "missing API key")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":{"message":"missing API key"}}` {
		t.Errorf("body: got %s", got)
	}
}
