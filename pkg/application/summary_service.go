package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/baselinehq/baseliner/pkg/domain"
	"github.com/baselinehq/baseliner/pkg/domain/ai"
)

// SummaryService condenses change request documents into the fixed one-line
// report format used by the CCB.
type SummaryService struct {
	provider ai.Provider
	audit    domain.AuditLogger
}

func NewSummaryService(provider ai.Provider, audit domain.AuditLogger) *SummaryService {
	return &SummaryService{provider: provider, audit: audit}
}

// Summarize extracts the key facts of one change request text.
func (s *SummaryService) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no substantial text content to summarize")
	}

	prompt := fmt.Sprintf(`Analyze the following change request text and extract the key information to fit the following format:

"This change request is due to [Problem], reported by [Reporter] from [Department] on [Date]. It affects [Affected Component, Items, Software(s)]."

If a piece of information is not explicitly found in the text, use "N/A" for that specific field.
Ensure the output strictly adheres to the requested format and is concise.

Change Request Text:
---
%s
---

Extracted Summary:`, text)

	resp, err := s.provider.Complete(ctx, ai.CompletionRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}

	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		return "", fmt.Errorf("provider returned an empty summary")
	}

	if s.audit != nil {
		err := s.audit.Log("change_request.summarize", "ai", map[string]interface{}{
			"provider": s.provider.ID(),
		})
		if err != nil {
			return "", fmt.Errorf("record audit event: %w", err)
		}
	}

	return summary, nil
}
