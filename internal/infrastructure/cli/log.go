package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "Show the upload log, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		lines, err := services.Archive.UploadLog()
		if err != nil {
			return MapError(err)
		}
		if len(lines) == 0 {
			fmt.Println("No uploads logged yet.")
			return nil
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(uploadsCmd)
}
