// Package initiator drives one humanize round trip per user action and
// owns the display state shown by the front-ends.
//
// State machine: Idle → Loading → Idle. Success and failure both return
// to Idle; there is no retry state. A submission made while another is
// in flight is dropped, not queued.
package initiator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Static copy shown by the front-ends.
const (
	AppName    = "AI Text Humanizer"
	AppTagline = "Transform AI-generated content into authentic, human-quality writing."

	// ConfigHint accompanies every displayed error.
	ConfigHint = `If the error mentions a missing API key or "Requested entity was not found.", ` +
		"make sure the server's Gemini API key is configured and has billing enabled."
)

var errEmptyResult = errors.New("the server returned an empty response")

// Humanizer performs the round trip. client.Client satisfies it.
type Humanizer interface {
	Humanize(ctx context.Context, text string) (string, error)
}

// State is a snapshot of what the front-end renders.
type State struct {
	Input   string
	Output  string
	Error   string
	Loading bool
}

type Initiator struct {
	humanizer Humanizer
	gate      *semaphore.Weighted

	mu       sync.Mutex
	state    State
	onChange func(State)

	// notifyMu is taken before mu is released so callbacks run in the
	// order the state changed.
	notifyMu sync.Mutex
}

type Option func(*Initiator)

// WithOnChange registers fn to receive every state transition, in the
// order the transitions happened. Calls are serialized; fn receives the
// snapshot and must not call back into the Initiator.
func WithOnChange(fn func(State)) Option {
	return func(in *Initiator) { in.onChange = fn }
}

func New(h Humanizer, opts ...Option) *Initiator {
	in := &Initiator{
		humanizer: h,
		gate:      semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// State returns the current display state.
func (in *Initiator) State() State {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state
}

// SetInput replaces the input text.
func (in *Initiator) SetInput(text string) {
	in.update(func(s *State) { s.Input = text })
}

// CanSubmit reports whether the submit action should be enabled.
func (in *Initiator) CanSubmit() bool {
	s := in.State()
	return !s.Loading && strings.TrimSpace(s.Input) != ""
}

// Submit humanizes sourceText and blocks until the round trip finishes.
// It returns false without doing anything when sourceText is blank or a
// submission is already in flight.
func (in *Initiator) Submit(ctx context.Context, sourceText string) (submitted bool) {
	if strings.TrimSpace(sourceText) == "" {
		return false
	}
	if !in.gate.TryAcquire(1) {
		return false
	}
	defer in.gate.Release(1)

	in.update(func(s *State) {
		s.Input = sourceText
		s.Output = ""
		s.Error = ""
		s.Loading = true
	})

	var (
		out string
		err error
	)
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("an unexpected error occurred: %v", r)
		}
		in.update(func(s *State) {
			s.Loading = false
			if err != nil {
				s.Output = ""
				s.Error = err.Error()
				if s.Error == "" {
					s.Error = "An unknown error occurred."
				}
				return
			}
			s.Output = out
		})
	}()

	submitted = true
	out, err = in.humanizer.Humanize(ctx, sourceText)
	if err == nil && out == "" {
		err = errEmptyResult
	}
	return submitted
}

func (in *Initiator) update(fn func(*State)) {
	in.mu.Lock()
	fn(&in.state)
	s := in.state
	if in.onChange == nil {
		in.mu.Unlock()
		return
	}
	in.notifyMu.Lock()
	in.mu.Unlock()

	defer in.notifyMu.Unlock()
	in.onChange(s)
}
