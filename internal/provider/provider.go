package provider

import (
	"context"
	"fmt"
)

// Provider generates text from a system directive and user content.
type Provider interface {
	Generate(ctx context.Context, prompt, text string) (string, error)
}

// Error is a rejection reported by the upstream API.
type Error struct {
	StatusCode int
	Message    string
	Details    any
	Err        error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider: status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider: status %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }
