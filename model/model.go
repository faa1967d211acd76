// Package model defines the text-generation capability boundary the router
// and orchestrator depend on. The underlying generator is pluggable; its own
// retry and model-selection policy lives behind the Generator interface.
package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/dealdesk/conversation"
)

// Request captures one normalized generation input: role instructions, a
// recent conversation window and the current user message.
type Request struct {
	Instructions string
	History      []conversation.Turn
	Message      string
}

// Generator produces text for a prompt plus conversation window. A failed
// call returns a *GenerationError; callers convert it to data close to the
// source rather than propagating it.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// GenerationError wraps a provider fault from an underlying generation call.
type GenerationError struct {
	Provider string
	Err      error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

// Unwrap exposes the underlying provider error.
func (e *GenerationError) Unwrap() error { return e.Err }

// Mock is a lightweight in-memory Generator for tests and examples. It
// replies with canned completions keyed by the request message and records
// every request it receives.
type Mock struct {
	mu        sync.Mutex
	responses map[string]string
	calls     []Request

	// Err, when set, makes every call fail with a GenerationError.
	Err error
}

// NewMock constructs an empty mock generator.
func NewMock() *Mock {
	return &Mock{responses: make(map[string]string)}
}

// AddResponse registers a deterministic canned completion for a message.
func (m *Mock) AddResponse(message, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[message] = response
}

// Generate implements Generator.
func (m *Mock) Generate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.Err != nil {
		return "", &GenerationError{Provider: "mock", Err: m.Err}
	}
	if resp, ok := m.responses[req.Message]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", req.Message), nil
}

// Calls returns a copy of all requests seen so far.
func (m *Mock) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
