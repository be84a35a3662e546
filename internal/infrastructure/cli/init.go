package cli

import (
	"fmt"

	"github.com/baselinehq/baseliner/pkg/domain/archive"
	"github.com/baselinehq/baseliner/pkg/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a baseliner workspace in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getWorkspaceRoot()
		if err != nil {
			return err
		}
		repo := storage.NewFilesystemRepository(root)

		if repo.IsInitialized() {
			fmt.Println("Workspace is already initialized.")
			return nil
		}

		if err := repo.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		cfg := archive.DefaultConfig()
		if err := repo.SaveConfig(&cfg); err != nil {
			return fmt.Errorf("failed to write default config: %w", err)
		}
		if err := repo.SaveCatalog(archive.DefaultTemplates()); err != nil {
			return fmt.Errorf("failed to write default catalog: %w", err)
		}

		fmt.Printf("Initialized baseliner workspace in %s\n", root)
		fmt.Printf("Documents will be archived under '%s'.\n", cfg.BaseDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
