// Package config loads the infrastructure-level settings kept outside the
// archiving policy, currently the AI provider defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baselinehq/baseliner/pkg/storage"
)

const aiConfigFile = "ai.yaml"

// DefaultAIProvider is used when a workspace carries no ai.yaml.
const DefaultAIProvider = "gemini"

// AIConfig names the backend answering classification and summarization
// requests. An empty Model defers to the provider's own default.
type AIConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// Validate rejects provider names no factory can build.
func (c *AIConfig) Validate() error {
	switch c.Provider {
	case "", "gemini", "openai", "mock":
		return nil
	default:
		return fmt.Errorf("unknown AI provider %q (expected gemini, openai or mock)", c.Provider)
	}
}

// LoadAIConfig reads the workspace AI settings. A workspace without ai.yaml
// returns nil so callers fall through to environment defaults.
func LoadAIConfig(repo *storage.FilesystemRepository) (*AIConfig, error) {
	path, err := repo.ResolvePath(aiConfigFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read AI config: %w", err)
	}

	var cfg AIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal AI config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveAIConfig validates and writes the workspace AI settings.
func SaveAIConfig(repo *storage.FilesystemRepository, cfg *AIConfig) error {
	if cfg == nil {
		return fmt.Errorf("AI config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := repo.ResolvePath(aiConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal AI config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
