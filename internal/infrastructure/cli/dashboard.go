package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <release>",
	Short: "Interactive TUI baseline dashboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(args[0])
	},
}

func runDashboard(release string) error {
	if os.Getenv("BASELINER_SKIP_DASHBOARD_RUN") == "true" {
		return nil
	}
	p := tea.NewProgram(initialModel(release))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard run failed: %w", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var statusUploaded = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var statusMissing = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

type model struct {
	table    table.Model
	release  string
	uploaded int
	required int
	depts    []string
	err      error
}

func initialModel(release string) model {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return model{err: err}
	}

	ov, err := services.Overview.Overview(release)
	if err != nil {
		return model{err: err}
	}

	progress, err := services.Overview.DepartmentProgress(release)
	if err != nil {
		return model{err: err}
	}

	// Setup Table
	columns := []table.Column{
		{Title: "Status", Width: 10},
		{Title: "ID", Width: 8},
		{Title: "Document", Width: 44},
		{Title: "Department", Width: 20},
		{Title: "Version", Width: 8},
		{Title: "Maturity", Width: 10},
	}

	rows := []table.Row{}
	for _, e := range ov.Entries {
		status := "missing"
		version := "-"
		maturity := "-"
		if e.Uploaded {
			status = "uploaded"
			version = e.Record.DocVersion
			maturity = string(e.Record.Maturity)
		}
		rows = append(rows, table.Row{status, e.Template.ID, e.Template.DisplayName, e.Template.DepartmentName, version, maturity})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))

	t.SetStyles(s)

	deptLines := []string{}
	deptNames := make([]string, 0, len(progress))
	for dept := range progress {
		deptNames = append(deptNames, dept)
	}
	sort.Strings(deptNames)
	for _, dept := range deptNames {
		counts := progress[dept]
		deptLines = append(deptLines, fmt.Sprintf("%s: %d/%d", dept, counts[0], counts[1]))
	}

	return model{
		table:    t,
		release:  ov.Release,
		uploaded: ov.Uploaded,
		required: ov.Required,
		depts:    deptLines,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	header := headerStyle.Render(fmt.Sprintf("Baseline %s", m.release))

	progressText := fmt.Sprintf("Documents: %d / %d", m.uploaded, m.required)

	statusView := ""
	if m.uploaded == m.required {
		statusView = statusUploaded.Render("\nBaseline complete")
	} else {
		statusView = statusMissing.Render(fmt.Sprintf("\n%d documents missing", m.required-m.uploaded))
	}

	deptView := "\nBy department:\n"
	for _, d := range m.depts {
		deptView += fmt.Sprintf("- %s\n", d)
	}

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			progressText,
			"\nChecklist:",
			m.table.View(),
			statusView,
			deptView,
			"\n[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}
