package llm

import (
	"context"
	"errors"
	"fmt"
)

var errEmptyCompletion = errors.New("empty completion response")

// Role values for chat messages sent to a completion service.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options carries the generation parameters for a single completion call.
type Options struct {
	MaxTokens   int
	Temperature float64
}

// Client is a text-completion service. Implementations perform a single
// remote call per Complete invocation and do no retrying of their own.
type Client interface {
	Name() string
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
	Close() error
}

// UpstreamError marks a failure of the external completion service itself
// (network, auth, quota). Callers decide whether to absorb or surface it.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream completion failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstream(provider string, err error) error {
	return &UpstreamError{Provider: provider, Err: err}
}

// System, User and Assistant are small helpers for building message lists.
func System(content string) Message { return Message{Role: RoleSystem, Content: content} }

func User(content string) Message { return Message{Role: RoleUser, Content: content} }

func Assistant(content string) Message { return Message{Role: RoleAssistant, Content: content} }
