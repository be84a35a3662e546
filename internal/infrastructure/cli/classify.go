package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/baselinehq/baseliner/pkg/extract"
	"github.com/spf13/cobra"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Classify a document into a PLM category using AI",
	Long: `Classify a document into a PLM category using AI.

The document text is extracted locally (PDF or plain text) and sent to
the configured AI provider. Set the provider in .baseliner/ai.yaml or
via BASELINER_AI_PROVIDER / BASELINER_AI_MODEL.`,
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
		if services.Classification == nil {
			return NewCLIError(
				"no AI provider configured",
				"Set GEMINI_API_KEY or OPENAI_API_KEY, or configure .baseliner/ai.yaml",
				nil,
			)
		}

		result, err := services.Classification.Classify(cmd.Context(), text)
		if err != nil {
			return MapError(err)
		}

		if classifyJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("Category:   %s\n", result.Category)
		fmt.Printf("Confidence: %d%%\n", result.ConfidenceScore)
		if len(result.Tags) > 0 {
			fmt.Printf("Tags:       %v\n", result.Tags)
		}
		if result.Reasoning != "" {
			fmt.Printf("Reasoning:  %s\n", result.Reasoning)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(classifyCmd)
}
