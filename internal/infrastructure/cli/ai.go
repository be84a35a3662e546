package cli

import (
	"fmt"

	"github.com/baselinehq/baseliner/internal/infrastructure/config"
	"github.com/baselinehq/baseliner/pkg/storage"
	"github.com/spf13/cobra"
)

// Flag variables for ai command
var (
	aiProviderName string
	aiModelName    string
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Manage the AI provider configuration",
}

var aiConfigureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Set the AI provider and model for this workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getWorkspaceRoot()
		if err != nil {
			return err
		}

		cfg := &config.AIConfig{
			Provider: aiProviderName,
			Model:    aiModelName,
		}
		if err := config.SaveAIConfig(storage.NewFilesystemRepository(root), cfg); err != nil {
			return fmt.Errorf("save AI config: %w", err)
		}

		fmt.Printf("AI provider set to %s (model: %s)\n", cfg.Provider, cfg.Model)
		return nil
	},
}

var aiShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured AI provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getWorkspaceRoot()
		if err != nil {
			return err
		}

		cfg, err := config.LoadAIConfig(storage.NewFilesystemRepository(root))
		if err != nil {
			return fmt.Errorf("load AI config: %w", err)
		}
		if cfg == nil {
			fmt.Println("No AI provider configured; environment defaults apply.")
			return nil
		}

		fmt.Printf("Provider: %s\n", cfg.Provider)
		fmt.Printf("Model:    %s\n", cfg.Model)
		return nil
	},
}

func init() {
	aiConfigureCmd.Flags().StringVar(&aiProviderName, "provider", config.DefaultAIProvider, "AI provider (gemini, openai, mock)")
	aiConfigureCmd.Flags().StringVar(&aiModelName, "model", "", "Model name")

	aiCmd.AddCommand(aiConfigureCmd)
	aiCmd.AddCommand(aiShowCmd)
	RootCmd.AddCommand(aiCmd)
}
