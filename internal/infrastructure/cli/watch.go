package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/baselinehq/baseliner/internal/infrastructure/watch"
	"github.com/baselinehq/baseliner/internal/infrastructure/wiring"
	"github.com/baselinehq/baseliner/pkg/application"
	"github.com/baselinehq/baseliner/pkg/domain/archive"
	"github.com/spf13/cobra"
)

// Flag variables for watch command
var (
	watchRelease  string
	watchVersion  string
	watchMaturity string
	watchSettle   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch an intake directory and archive matching documents",
	Long: `Watch an intake directory and archive matching documents.

A dropped PDF or ZIP whose base name matches a catalog template's
expected filename is stored automatically for the given release.
Files that match no template are reported and left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatchCmd,
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("intake directory %q is not accessible", dir)
	}

	maturity, err := archive.ParseMaturity(watchMaturity)
	if err != nil {
		return MapError(err)
	}

	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}
	catalog, err := services.Workspace.Repo.LoadCatalog()
	if err != nil {
		return MapError(err)
	}

	watcher, err := watch.NewIntakeWatcher(watchSettle, nil, func(ev watch.IntakeEvent) {
		intakeFile(services, catalog, maturity, ev.Path)
	})
	if err != nil {
		return fmt.Errorf("start intake watcher: %w", err)
	}
	if err := watcher.Watch(dir); err != nil {
		return err
	}

	fmt.Printf("Watching %s for release '%s'... (Ctrl+C to stop)\n", dir, watchRelease)
	return watcher.Run(cmd.Context())
}

func intakeFile(services *wiring.AppServices, catalog *archive.Catalog, maturity archive.Maturity, path string) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	tmpl, ok := matchTemplate(catalog, base)
	if !ok {
		fmt.Printf("Skipping %s: no catalog template expects '%s'\n", path, base)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Skipping %s: %v\n", path, err)
		return
	}

	record, err := services.Archive.Store(application.StoreRequest{
		TemplateID:       tmpl.ID,
		ReleaseName:      watchRelease,
		DocVersion:       watchVersion,
		Maturity:         maturity,
		OriginalFilename: filepath.Base(path),
		Data:             data,
	})
	if err != nil {
		if record == nil {
			fmt.Printf("Failed to archive %s: %v\n", path, err)
			return
		}
		fmt.Printf("Warning: %v\n", err)
	}

	fmt.Printf("Archived %s as %s\n", path, record.SavedPath)
}

func matchTemplate(catalog *archive.Catalog, base string) (archive.DocumentTemplate, bool) {
	if tmpl, ok := catalog.ByExpectedBaseFilename(base); ok {
		return tmpl, true
	}
	// Intake filenames often differ in case alone.
	for _, t := range catalog.Templates() {
		if strings.EqualFold(t.ExpectedBaseFilename, base) {
			return t, true
		}
	}
	return archive.DocumentTemplate{}, false
}

func init() {
	watchCmd.Flags().StringVarP(&watchRelease, "release", "r", "", "Release to archive intake documents under")
	watchCmd.Flags().StringVar(&watchVersion, "doc-version", "1.0", "Version recorded for intake documents")
	watchCmd.Flags().StringVarP(&watchMaturity, "maturity", "m", archive.DefaultMaturity().Token(), "Maturity recorded for intake documents")
	watchCmd.Flags().DurationVar(&watchSettle, "settle", 500*time.Millisecond, "Quiet period before an intake file is processed")

	_ = watchCmd.MarkFlagRequired("release")

	RootCmd.AddCommand(watchCmd)
}
