package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-pro-preview"

// Gemini calls the Gemini generateContent API through the genai SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

// GeminiOptions configures NewGemini. BaseURL and HTTPClient are optional.
type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGemini(ctx context.Context, opts GeminiOptions) (*Gemini, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini: API key is required")
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Model returns the model identifier requests are sent to.
func (g *Gemini) Model() string { return g.model }

func (g *Gemini) Generate(ctx context.Context, prompt, text string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompt, genai.RoleUser),
		},
	)
	if err != nil {
		return "", translateGeminiError(err)
	}
	return resp.Text(), nil
}

// translateGeminiError lifts a genai API error into *Error so callers can
// branch on the HTTP status without importing the SDK.
func translateGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return newGeminiError(apiErr, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return newGeminiError(*apiErrPtr, err)
	}
	return fmt.Errorf("gemini: generate: %w", err)
}

func newGeminiError(apiErr genai.APIError, cause error) *Error {
	e := &Error{
		StatusCode: apiErr.Code,
		Message:    apiErr.Message,
		Err:        cause,
	}
	if len(apiErr.Details) > 0 {
		e.Details = apiErr.Details
	}
	return e
}
