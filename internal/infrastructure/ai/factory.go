// Package ai selects the completion provider used by the AI commands.
package ai

import (
	"fmt"
	"os"

	infraAI "github.com/baselinehq/baseliner/pkg/ai"
	"github.com/baselinehq/baseliner/pkg/domain/ai"
)

// NewProvider builds a provider by name. API keys come from the environment.
func NewProvider(providerName string, modelName string) (ai.Provider, error) {
	switch providerName {
	case "gemini", "":
		apiKey := os.Getenv("GEMINI_API_KEY")
		return infraAI.NewGeminiProvider(modelName, apiKey), nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		return infraAI.NewOpenAIProvider(modelName, apiKey), nil
	case "mock":
		return &MockProvider{Model: modelName}, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", providerName)
	}
}

// GetDefaultProvider returns a provider based on environment variables or
// the workspace AI config.
func GetDefaultProvider(providerName, modelName string) (ai.Provider, error) {
	envProvider := os.Getenv("BASELINER_AI_PROVIDER")
	envModel := os.Getenv("BASELINER_AI_MODEL")

	if envProvider != "" {
		providerName = envProvider
	}
	if envModel != "" {
		modelName = envModel
	}

	return NewProvider(providerName, modelName)
}
