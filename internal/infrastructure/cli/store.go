package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/baselinehq/baseliner/pkg/application"
	"github.com/baselinehq/baseliner/pkg/domain/archive"
	"github.com/spf13/cobra"
)

// Flag variables for store command
var (
	storeTemplate string
	storeRelease  string
	storeVersion  string
	storeMaturity string
)

var storeCmd = &cobra.Command{
	Use:   "store <file>",
	Short: "Archive a document under its canonical name and path",
	Long: `Archive a document under its canonical name and path.

The file may be a PDF or a ZIP archive containing the expected PDF.
Storing the same template for the same release again replaces the
previous upload record.

Examples:
  baseliner store TestStatusReport.pdf --template TSTR --release "R1 2025" --doc-version 1.1
  baseliner store export.zip --template PRA --release R2 --doc-version 2.0 --maturity released`,
	Args: cobra.ExactArgs(1),
	RunE: runStoreCmd,
}

func runStoreCmd(cmd *cobra.Command, args []string) error {
	maturity, err := archive.ParseMaturity(storeMaturity)
	if err != nil {
		return MapError(err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	record, err := services.Archive.Store(application.StoreRequest{
		TemplateID:       storeTemplate,
		ReleaseName:      storeRelease,
		DocVersion:       storeVersion,
		Maturity:         maturity,
		OriginalFilename: filepath.Base(args[0]),
		Data:             data,
	})
	if err != nil {
		// A non-nil record means the document is saved and the error only
		// degrades the run, like a failed log append or a maturity that
		// skips a review step.
		if record == nil {
			return MapError(err)
		}
		fmt.Printf("Warning: %v\n", err)
	}

	fmt.Printf("Stored '%s' for release '%s'\n", record.OriginalFilename, record.ReleaseName)
	fmt.Printf("  Saved as: %s\n", record.SavedFilename)
	fmt.Printf("  Location: %s\n", record.SavedPath)
	return nil
}

func init() {
	storeCmd.Flags().StringVarP(&storeTemplate, "template", "t", "", "Document template ID (see 'baseliner catalog')")
	storeCmd.Flags().StringVarP(&storeRelease, "release", "r", "", "Release the document belongs to")
	storeCmd.Flags().StringVar(&storeVersion, "doc-version", "", "Document version, e.g. 1.1")
	storeCmd.Flags().StringVarP(&storeMaturity, "maturity", "m", archive.DefaultMaturity().Token(), "Document maturity (draft, reviewed, released, obsolete)")

	_ = storeCmd.MarkFlagRequired("template")
	_ = storeCmd.MarkFlagRequired("release")
	_ = storeCmd.MarkFlagRequired("doc-version")

	RootCmd.AddCommand(storeCmd)
}
