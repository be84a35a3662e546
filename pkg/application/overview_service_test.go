package application_test

import (
	"strings"
	"testing"

	"github.com/baselinehq/baseliner/pkg/application"
	"github.com/baselinehq/baseliner/pkg/domain/archive"
	"github.com/baselinehq/baseliner/pkg/storage"
)

func newOverviewFixture(t *testing.T) (*application.OverviewService, *application.ArchiveService) {
	t.Helper()
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return application.NewOverviewService(repo), application.NewArchiveService(repo, nil)
}

func storeDoc(t *testing.T, svc *application.ArchiveService, release, templateID string) {
	t.Helper()
	_, err := svc.Store(application.StoreRequest{
		TemplateID:       templateID,
		ReleaseName:      release,
		DocVersion:       "1.0",
		Maturity:         archive.MaturityDraft,
		OriginalFilename: "doc.pdf",
		Data:             []byte("%PDF"),
	})
	if err != nil {
		t.Fatalf("Store %s: %v", templateID, err)
	}
}

func TestOverview_ChecklistCountsAndOrder(t *testing.T) {
	overviewSvc, archiveSvc := newOverviewFixture(t)

	storeDoc(t, archiveSvc, "R1", "TSTR")
	storeDoc(t, archiveSvc, "R1", "PRA")

	overview, err := overviewSvc.Overview("R1")
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if overview.Required != 31 {
		t.Errorf("expected 31 required documents, got %d", overview.Required)
	}
	if overview.Uploaded != 2 {
		t.Errorf("expected 2 uploaded documents, got %d", overview.Uploaded)
	}
	if overview.Complete() {
		t.Error("release should not be complete")
	}
	if len(overview.Entries) != 31 {
		t.Fatalf("expected one entry per template, got %d", len(overview.Entries))
	}
	// Catalog order puts PRA first.
	if overview.Entries[0].Template.ID != "PRA" || !overview.Entries[0].Uploaded {
		t.Errorf("unexpected first entry: %+v", overview.Entries[0])
	}
}

func TestOverview_DepartmentProgress(t *testing.T) {
	overviewSvc, archiveSvc := newOverviewFixture(t)

	storeDoc(t, archiveSvc, "R1", "TSTR")

	progress, err := overviewSvc.DepartmentProgress("R1")
	if err != nil {
		t.Fatalf("DepartmentProgress: %v", err)
	}

	test := progress["Test & Validation"]
	if test[0] != 1 || test[1] != 6 {
		t.Errorf("unexpected Test & Validation progress: %v", test)
	}
	pm := progress["Project Management"]
	if pm[0] != 0 || pm[1] != 7 {
		t.Errorf("unexpected Project Management progress: %v", pm)
	}
}

func TestOverview_ExportCSV(t *testing.T) {
	overviewSvc, archiveSvc := newOverviewFixture(t)

	storeDoc(t, archiveSvc, "R1", "TSTR")

	csv, err := overviewSvc.ExportCSV("R1")
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 32 {
		t.Fatalf("expected header plus 31 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Release;Department;") {
		t.Errorf("unexpected header: %q", lines[0])
	}

	var uploaded, missing int
	for _, line := range lines[1:] {
		switch {
		case strings.Contains(line, ";Uploaded;"):
			uploaded++
		case strings.Contains(line, ";Missing;N/A;N/A;N/A;N/A"):
			missing++
		}
	}
	if uploaded != 1 || missing != 30 {
		t.Errorf("expected 1 uploaded and 30 missing rows, got %d/%d", uploaded, missing)
	}
}

func TestOverview_Releases(t *testing.T) {
	overviewSvc, archiveSvc := newOverviewFixture(t)

	storeDoc(t, archiveSvc, "R2", "TSTR")
	storeDoc(t, archiveSvc, "R1", "TSTR")

	releases, err := overviewSvc.Releases()
	if err != nil {
		t.Fatalf("Releases: %v", err)
	}
	if len(releases) != 2 || releases[0] != "R1" || releases[1] != "R2" {
		t.Errorf("unexpected releases: %v", releases)
	}
}
