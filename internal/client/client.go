// Package client calls the humanizer HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HumanizePath is the gateway endpoint.
const HumanizePath = "/api/humanize"

// ErrEmptyResponse is returned when the server answers 200 without text.
var ErrEmptyResponse = errors.New("server returned an empty response")

// Error is a non-2xx answer from the server.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return "failed to humanize text: " + e.Message
}

type Client struct {
	BaseURL   string
	AccessKey string
	HTTP      *http.Client
}

// New returns a Client using http.DefaultClient. No timeout is set: a
// request runs until the server answers.
func New(baseURL, accessKey string) *Client {
	return &Client{BaseURL: baseURL, AccessKey: accessKey, HTTP: http.DefaultClient}
}

type humanizeRequest struct {
	Text string `json:"text"`
}

type humanizeResponse struct {
	HumanizedText string `json:"humanizedText"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Humanize sends text to the server and returns the rewritten version.
func (c *Client) Humanize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(humanizeRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("humanize: marshal request: %w", err)
	}

	url := strings.TrimRight(c.BaseURL, "/") + HumanizePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("humanize: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.AccessKey != "" {
		req.Header.Set("X-API-Key", c.AccessKey)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("humanize: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		msg := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return "", &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	var out humanizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("humanize: decode response: %w", err)
	}
	if out.HumanizedText == "" {
		return "", ErrEmptyResponse
	}
	return out.HumanizedText, nil
}
