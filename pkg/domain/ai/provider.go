// Package ai defines the completion contract the document services are
// written against. Classification and change request summarization both
// speak to a Provider; which backend answers is a workspace configuration
// detail.
package ai

import (
	"context"
)

// CompletionRequest is one prompt for a provider. ForceJSON asks the backend
// for native JSON output where the API supports it (the classifier sets it;
// the summarizer wants prose and leaves it off). Callers still validate the
// returned payload themselves.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	ForceJSON   bool
}

// CompletionResponse carries the provider answer plus the token accounting
// recorded alongside audit events.
type CompletionResponse struct {
	Text  string
	Model string
	Usage TokenUsage
}

// TokenUsage counts prompt and answer tokens as reported by the backend.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Provider is one AI backend. ID identifies the backend and model in audit
// metadata.
type Provider interface {
	ID() string
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
