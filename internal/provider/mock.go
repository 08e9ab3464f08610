package provider

import (
	"context"
	"fmt"
	"strings"
	"time"
)

var mockContractions = strings.NewReplacer(
	"do not", "don't",
	"does not", "doesn't",
	"is not", "isn't",
	"are not", "aren't",
	"cannot", "can't",
	"will not", "won't",
	"it is", "it's",
	"I am", "I'm",
)

// Mock rewrites text offline with a fixed set of contractions.
// Used for development and testing without a Gemini key.
type Mock struct {
	Delay time.Duration
}

func (m *Mock) Generate(ctx context.Context, prompt, text string) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}
	return mockContractions.Replace(strings.TrimSpace(text)), nil
}
