// Package ai implements the completion providers behind document
// classification and change request summarization, plus the resilience
// wrapper applied around every provider call.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/baselinehq/baseliner/pkg/domain/ai"
)

// defaultGeminiModel is what the document tagging prompts were tuned
// against; a flash-tier model keeps per-document classification cheap.
const defaultGeminiModel = "gemini-1.5-flash"

// GeminiProvider calls the Generative Language REST API. It is the default
// backend: classification requests run with the JSON response type so the
// schema check downstream sees a bare object instead of fenced markdown.
type GeminiProvider struct {
	Model  string
	APIKey string

	baseURL    string
	httpClient *http.Client
}

func NewGeminiProvider(model string, apiKey string) *GeminiProvider {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{
		Model:  model,
		APIKey: apiKey,
	}
}

// NewGeminiProviderWithClient overrides the endpoint and HTTP client so
// tests can point the provider at an httptest server.
func NewGeminiProviderWithClient(model, apiKey, baseURL string, client *http.Client) *GeminiProvider {
	p := NewGeminiProvider(model, apiKey)
	p.baseURL = baseURL
	p.httpClient = client
	return p
}

func (p *GeminiProvider) ID() string {
	return "gemini:" + p.Model
}

type geminiGenerationConfig struct {
	Temperature      float32 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerateRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

func (p *GeminiProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	if p.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key not provided (set GEMINI_API_KEY)")
	}

	body, err := json.Marshal(p.buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: encode request: %w", err)
	}

	url := p.baseURL
	if url == "" {
		url = fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", p.Model, p.APIKey)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := p.httpClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: unexpected status %s", resp.Status)
	}

	var gResp geminiGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}

	if len(gResp.Candidates) == 0 || len(gResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: response carried no candidates")
	}

	return &ai.CompletionResponse{
		Text:  gResp.Candidates[0].Content.Parts[0].Text,
		Model: p.Model,
		Usage: ai.TokenUsage{
			InputTokens:  gResp.UsageMetadata.PromptTokenCount,
			OutputTokens: gResp.UsageMetadata.CandidatesTokenCount,
		},
	}, nil
}

func (p *GeminiProvider) buildRequest(req ai.CompletionRequest) geminiGenerateRequest {
	out := geminiGenerateRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: req.Prompt}}},
		},
	}

	if req.System != "" {
		out.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.System}},
		}
	}

	if req.Temperature != 0 || req.MaxTokens != 0 || req.ForceJSON {
		cfg := &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
		if req.ForceJSON {
			cfg.ResponseMIMEType = "application/json"
		}
		out.GenerationConfig = cfg
	}

	return out
}
