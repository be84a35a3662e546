package ai

import (
	"context"

	"github.com/baselinehq/baseliner/pkg/domain/ai"
)

// MockProvider returns canned answers for local development and tests.
type MockProvider struct {
	Model string
}

func (m *MockProvider) ID() string {
	return "mock:" + m.Model
}

func (m *MockProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	text := "This change request is due to N/A, reported by N/A from N/A on N/A. It affects N/A."
	if req.ForceJSON {
		text = `{"category": "Other", "confidence_score": 0, "tags": ["mock"], "reasoning": "Mock provider response."}`
	}
	return &ai.CompletionResponse{
		Text:  text,
		Model: "mock-" + m.Model,
		Usage: ai.TokenUsage{InputTokens: len(req.Prompt) / 4, OutputTokens: len(text) / 4},
	}, nil
}
