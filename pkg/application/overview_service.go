package application

import (
	"fmt"
	"strings"

	"github.com/baselinehq/baseliner/pkg/domain"
	"github.com/baselinehq/baseliner/pkg/domain/archive"
)

// ChecklistEntry is one catalog template's status for a release.
type ChecklistEntry struct {
	Template archive.DocumentTemplate
	Record   *archive.UploadRecord
	Uploaded bool
}

// ReleaseOverview summarises the checklist of one release.
type ReleaseOverview struct {
	Release  string
	Entries  []ChecklistEntry
	Uploaded int
	Required int
}

// Complete reports whether every required document has been uploaded.
func (o ReleaseOverview) Complete() bool {
	return o.Required > 0 && o.Uploaded == o.Required
}

// Progress returns the upload ratio in the range 0 to 1.
func (o ReleaseOverview) Progress() float64 {
	if o.Required == 0 {
		return 0
	}
	return float64(o.Uploaded) / float64(o.Required)
}

// OverviewService answers checklist and export queries against the
// persisted upload records.
type OverviewService struct {
	repo domain.WorkspaceRepository
}

func NewOverviewService(repo domain.WorkspaceRepository) *OverviewService {
	return &OverviewService{repo: repo}
}

// Releases lists every release with at least one record, sorted.
func (s *OverviewService) Releases() ([]string, error) {
	session, err := s.loadSession()
	if err != nil {
		return nil, err
	}
	return session.Releases(), nil
}

// Overview builds the full checklist of one release in catalog order.
func (s *OverviewService) Overview(release string) (*ReleaseOverview, error) {
	catalog, err := s.repo.LoadCatalog()
	if err != nil {
		return nil, err
	}
	session, err := s.loadSession()
	if err != nil {
		return nil, err
	}

	uploads := session.ForRelease(release)
	overview := &ReleaseOverview{
		Release:  release,
		Required: catalog.Len(),
	}

	for _, tmpl := range catalog.Templates() {
		entry := ChecklistEntry{Template: tmpl}
		if rec, ok := uploads[tmpl.ID]; ok {
			r := rec
			entry.Record = &r
			entry.Uploaded = true
			overview.Uploaded++
		}
		overview.Entries = append(overview.Entries, entry)
	}

	return overview, nil
}

// DepartmentProgress returns uploaded/required counts per department in
// catalog department order.
func (s *OverviewService) DepartmentProgress(release string) (map[string][2]int, error) {
	overview, err := s.Overview(release)
	if err != nil {
		return nil, err
	}

	progress := make(map[string][2]int)
	for _, entry := range overview.Entries {
		counts := progress[entry.Template.DepartmentName]
		counts[1]++
		if entry.Uploaded {
			counts[0]++
		}
		progress[entry.Template.DepartmentName] = counts
	}
	return progress, nil
}

// ExportCSV renders one release's checklist as semicolon-separated CSV.
// Missing documents appear with N/A placeholders so the export always has
// one row per catalog template.
func (s *OverviewService) ExportCSV(release string) (string, error) {
	overview, err := s.Overview(release)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Release;Department;Document Template Name;Status;Uploaded Document Version;Maturity;Saved Filename;Full Path\n")

	for _, entry := range overview.Entries {
		status, version, maturity, saved, path := "Missing", "N/A", "N/A", "N/A", "N/A"
		if entry.Uploaded {
			status = "Uploaded"
			version = entry.Record.DocVersion
			maturity = entry.Record.Maturity.String()
			saved = entry.Record.SavedFilename
			path = entry.Record.SavedPath
		}
		fmt.Fprintf(&b, "%s;%s;%s;%s;%s;%s;%s;%s\n",
			release,
			entry.Template.DepartmentName,
			entry.Template.DisplayName,
			status,
			version,
			maturity,
			saved,
			path,
		)
	}

	return b.String(), nil
}

func (s *OverviewService) loadSession() (*archive.Session, error) {
	records, err := s.repo.LoadRecords()
	if err != nil {
		return nil, err
	}
	session := archive.NewSession()
	session.Load(records)
	return session, nil
}
