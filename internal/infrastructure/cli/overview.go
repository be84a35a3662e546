package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

// Flag variables for overview command
var (
	overviewCSVPath string
	overviewJSON    bool
	overviewMissing bool
	overviewTUI     bool
)

var overviewCmd = &cobra.Command{
	Use:   "overview <release>",
	Short: "Show the baseline checklist for a release",
	Long: `Show the baseline checklist for a release.

Every catalog template appears once, marked uploaded or missing.

Flags:
  --csv <file>  Write the checklist as semicolon-separated CSV
  --missing     Show only missing documents
  --json        Output in JSON format

Examples:
  baseliner overview "R1 2025"
  baseliner overview "R1 2025" --missing
  baseliner overview "R1 2025" --csv baseline.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runOverviewCmd,
}

// overviewJSONOutput represents the JSON output format for overview
type overviewJSONOutput struct {
	Release     string                  `json:"release"`
	Uploaded    int                     `json:"uploaded"`
	Required    int                     `json:"required"`
	Complete    bool                    `json:"complete"`
	Progress    float64                 `json:"progress"`
	Departments map[string]progressJSON `json:"departments"`
	Entries     []overviewEntryJSON     `json:"entries"`
}

type progressJSON struct {
	Uploaded int `json:"uploaded"`
	Required int `json:"required"`
}

type overviewEntryJSON struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Uploaded   bool   `json:"uploaded"`
	Version    string `json:"version,omitempty"`
	Maturity   string `json:"maturity,omitempty"`
	SavedPath  string `json:"saved_path,omitempty"`
}

func runOverviewCmd(cmd *cobra.Command, args []string) error {
	release := args[0]

	if overviewTUI {
		return runDashboard(release)
	}

	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	if overviewCSVPath != "" {
		csv, err := services.Overview.ExportCSV(release)
		if err != nil {
			return MapError(err)
		}
		if err := os.WriteFile(overviewCSVPath, []byte(csv), 0600); err != nil {
			return fmt.Errorf("write CSV export: %w", err)
		}
		fmt.Printf("Baseline status exported to %s\n", overviewCSVPath)
		return nil
	}

	ov, err := services.Overview.Overview(release)
	if err != nil {
		return MapError(err)
	}
	progress, err := services.Overview.DepartmentProgress(release)
	if err != nil {
		return MapError(err)
	}

	if overviewJSON {
		output := overviewJSONOutput{
			Release:     ov.Release,
			Uploaded:    ov.Uploaded,
			Required:    ov.Required,
			Complete:    ov.Complete(),
			Progress:    ov.Progress() * 100,
			Departments: make(map[string]progressJSON, len(progress)),
		}
		for dept, counts := range progress {
			output.Departments[dept] = progressJSON{Uploaded: counts[0], Required: counts[1]}
		}
		for _, e := range ov.Entries {
			if overviewMissing && e.Uploaded {
				continue
			}
			entry := overviewEntryJSON{
				TemplateID: e.Template.ID,
				Name:       e.Template.DisplayName,
				Department: e.Template.DepartmentName,
				Uploaded:   e.Uploaded,
			}
			if e.Record != nil {
				entry.Version = e.Record.DocVersion
				entry.Maturity = string(e.Record.Maturity)
				entry.SavedPath = e.Record.SavedPath
			}
			output.Entries = append(output.Entries, entry)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	fmt.Printf("Release: %s\n", ov.Release)
	fmt.Printf("Baseline progress: %.1f%% (%d/%d documents)\n", ov.Progress()*100, ov.Uploaded, ov.Required)

	depts := make([]string, 0, len(progress))
	for dept := range progress {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	fmt.Println("\nBy department:")
	for _, dept := range depts {
		counts := progress[dept]
		fmt.Printf("  %-24s %d/%d\n", dept, counts[0], counts[1])
	}

	fmt.Println("\nChecklist")
	fmt.Println("----------------")
	for _, e := range ov.Entries {
		if overviewMissing && e.Uploaded {
			continue
		}
		if e.Uploaded {
			fmt.Printf("[x] %-8s %-45s (v%s, %s)\n",
				e.Template.ID, e.Template.DisplayName, e.Record.DocVersion, e.Record.Maturity)
		} else {
			fmt.Printf("[ ] %-8s %-45s\n", e.Template.ID, e.Template.DisplayName)
		}
	}

	if ov.Complete() {
		fmt.Println("\nBaseline is complete.")
	}
	return nil
}

var overviewReleasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "List releases with recorded uploads",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		releases, err := services.Overview.Releases()
		if err != nil {
			return MapError(err)
		}
		if len(releases) == 0 {
			fmt.Println("No uploads recorded yet.")
			return nil
		}
		for _, r := range releases {
			fmt.Println(r)
		}
		return nil
	},
}

func init() {
	overviewCmd.Flags().StringVar(&overviewCSVPath, "csv", "", "Export the checklist to this CSV file")
	overviewCmd.Flags().BoolVar(&overviewTUI, "tui", false, "Render the checklist as an interactive dashboard")
	overviewCmd.Flags().BoolVar(&overviewMissing, "missing", false, "Show only missing documents")
	overviewCmd.Flags().BoolVar(&overviewJSON, "json", false, "Output in JSON format")

	overviewCmd.AddCommand(overviewReleasesCmd)
	RootCmd.AddCommand(overviewCmd)
}
