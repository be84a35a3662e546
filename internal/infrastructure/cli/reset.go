package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset <release>",
	Short: "Clear the upload records of a release",
	Long: `Clear the upload records of a release.

Archived files stay on disk; only the checklist state is reset.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		release := args[0]

		if !resetForce {
			fmt.Printf("Reset all upload records for release '%s'? [y/N]: ", release)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := services.Archive.ResetRelease(release); err != nil {
			return MapError(err)
		}

		fmt.Printf("Upload records for release '%s' cleared.\n", release)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
	RootCmd.AddCommand(resetCmd)
}
