package cli

import (
	"fmt"
	"os"

	"github.com/baselinehq/baseliner/pkg/extract"
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Summarize a change request document using AI",
	Long: `Summarize a change request document using AI.

The summary follows a fixed sentence template so change control board
minutes stay uniform. Missing details are reported as N/A.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		text, err := extract.Text(data, args[0])
		if err != nil {
			return fmt.Errorf("extract text: %w", err)
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if services.Summary == nil {
			return NewCLIError(
				"no AI provider configured",
				"Set GEMINI_API_KEY or OPENAI_API_KEY, or configure .baseliner/ai.yaml",
				nil,
			)
		}

		summary, err := services.Summary.Summarize(cmd.Context(), text)
		if err != nil {
			return MapError(err)
		}

		fmt.Println(summary)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(summarizeCmd)
}
