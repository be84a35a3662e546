package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"

	"github.com/baselinehq/baseliner/pkg/domain"
	"github.com/baselinehq/baseliner/pkg/domain/ai"
	"github.com/baselinehq/baseliner/pkg/domain/classification"
)

const classificationSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["category", "confidence_score", "tags", "reasoning"],
  "properties": {
    "category": { "type": "string" },
    "confidence_score": { "type": "integer", "minimum": 0, "maximum": 100 },
    "tags": { "type": "array", "items": { "type": "string" } },
    "reasoning": { "type": "string" }
  }
}`

var classificationSchemaLoader = gojsonschema.NewStringLoader(classificationSchemaJSON)

// maxAnalysisChars caps how much document text is sent to the provider.
const maxAnalysisChars = 8000

// ClassificationService asks an AI provider to categorise extracted document
// text and validates the structured answer before accepting it.
type ClassificationService struct {
	provider ai.Provider
	audit    domain.AuditLogger
}

func NewClassificationService(provider ai.Provider, audit domain.AuditLogger) *ClassificationService {
	return &ClassificationService{provider: provider, audit: audit}
}

// Classify categorises one document's text. Unknown categories fold into
// Other; structurally invalid provider answers are rejected.
func (s *ClassificationService) Classify(ctx context.Context, text string) (*classification.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document text is empty, nothing to classify")
	}

	text = truncateOnRuneBoundary(text, maxAnalysisChars)

	categories, _ := json.Marshal(classification.DocumentCategories())
	prompt := fmt.Sprintf(`You are an expert in Product Lifecycle Management (PLM) and document control.
Your task is to analyze the provided technical document text and classify it.

Based on the text content, provide your response ONLY as a valid JSON object with these fields:
1. "category": From the following list, choose the single most likely document type: %s. If none fit, use "Other".
2. "confidence_score": An integer score from 0 to 100 indicating how confident you are.
3. "tags": A list of 5 to 7 relevant keywords.
4. "reasoning": A brief justification in one or two sentences.

Here is the document text to analyze:
---
%s
---`, categories, text)

	resp, err := s.provider.Complete(ctx, ai.CompletionRequest{
		Prompt:      prompt,
		Temperature: 0.2,
		ForceJSON:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("classification request failed: %w", err)
	}

	result, err := parseClassification(resp.Text)
	if err != nil {
		return nil, err
	}

	normalized := result.Normalize()
	if s.audit != nil {
		err := s.audit.Log("document.classify", "ai", map[string]interface{}{
			"category":   normalized.Category,
			"confidence": normalized.ConfidenceScore,
			"provider":   s.provider.ID(),
		})
		if err != nil {
			return nil, fmt.Errorf("record audit event: %w", err)
		}
	}

	return &normalized, nil
}

// truncateOnRuneBoundary caps the text at max bytes without splitting a
// multi-byte rune at the cut point.
func truncateOnRuneBoundary(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func parseClassification(text string) (*classification.Result, error) {
	cleanJSON := extractJSONPayload(text)

	documentLoader := gojsonschema.NewStringLoader(cleanJSON)
	validation, err := gojsonschema.Validate(classificationSchemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("classification response is not valid JSON: %w", err)
	}
	if !validation.Valid() {
		var issues []string
		for _, desc := range validation.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("classification response failed schema validation: %s", strings.Join(issues, "; "))
	}

	var result classification.Result
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to decode classification response: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}

// extractJSONPayload strips markdown fences and surrounding prose from a
// provider response, returning the first JSON object or array.
func extractJSONPayload(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return clean
	}

	startArray := strings.Index(clean, "[")
	startObject := strings.Index(clean, "{")
	start := -1
	if startArray == -1 {
		start = startObject
	} else if startObject == -1 || startArray < startObject {
		start = startArray
	} else {
		start = startObject
	}
	if start == -1 {
		return clean
	}

	endArray := strings.LastIndex(clean, "]")
	endObject := strings.LastIndex(clean, "}")
	end := -1
	if endArray == -1 {
		end = endObject
	} else if endObject == -1 || endArray > endObject {
		end = endArray
	} else {
		end = endObject
	}
	if end == -1 || end <= start {
		return clean
	}

	return strings.TrimSpace(clean[start : end+1])
}
