package wiring

import (
	infraai "github.com/baselinehq/baseliner/internal/infrastructure/ai"
	"github.com/baselinehq/baseliner/internal/infrastructure/config"
	pkgai "github.com/baselinehq/baseliner/pkg/ai"
	"github.com/baselinehq/baseliner/pkg/domain/ai"
	"github.com/baselinehq/baseliner/pkg/storage"
)

// LoadAIProvider resolves the configured provider for a workspace and wraps
// it with retry and timeout handling. Workspace config is optional; absent
// config falls back to environment variables and provider defaults.
func LoadAIProvider(root string) (ai.Provider, error) {
	providerName := ""
	modelName := ""

	if cfg, err := config.LoadAIConfig(storage.NewFilesystemRepository(root)); err == nil && cfg != nil {
		providerName = cfg.Provider
		modelName = cfg.Model
	}

	inner, err := infraai.GetDefaultProvider(providerName, modelName)
	if err != nil {
		return nil, err
	}

	return pkgai.NewResilientProvider(inner), nil
}
