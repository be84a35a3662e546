package application_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baselinehq/baseliner/pkg/application"
	"github.com/baselinehq/baseliner/pkg/domain/archive"
	"github.com/baselinehq/baseliner/pkg/storage"
)

func newArchiveFixture(t *testing.T) (*application.ArchiveService, *storage.FilesystemRepository) {
	t.Helper()
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	audit := application.NewAuditService(repo)
	return application.NewArchiveService(repo, audit), repo
}

func TestArchiveService_Store_DirectPDF(t *testing.T) {
	svc, repo := newArchiveFixture(t)

	record, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1 2025",
		DocVersion:       "1.1 beta",
		Maturity:         archive.MaturityDraft,
		OriginalFilename: "some_report.pdf",
		Data:             []byte("%PDF-1.7 body"),
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if record.SavedFilename != "TEST_TestStatusReport_1.1_beta_draft.pdf" {
		t.Errorf("unexpected saved filename: %q", record.SavedFilename)
	}
	wantDir := filepath.Join("output_folder", "R1_2025", "Test_and_Validation", "TestStatusReport")
	if filepath.Dir(record.SavedPath) != wantDir {
		t.Errorf("unexpected saved dir: %q", filepath.Dir(record.SavedPath))
	}

	data, err := os.ReadFile(filepath.Join(repo.Root(), record.SavedPath))
	if err != nil {
		t.Fatalf("read archived file: %v", err)
	}
	if string(data) != "%PDF-1.7 body" {
		t.Error("archived content does not match upload")
	}

	lines, err := repo.ReadUploadLog("uploads.log")
	if err != nil {
		t.Fatalf("ReadUploadLog: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Release: R1 2025") || !strings.Contains(lines[0], "'some_report.pdf'") {
		t.Errorf("unexpected log line: %q", lines[0])
	}

	events, err := repo.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents: %v", err)
	}
	if len(events) != 1 || events[0].Action != "document.store" {
		t.Errorf("expected a document.store event, got %+v", events)
	}
}

func TestArchiveService_Store_ZipFallback(t *testing.T) {
	svc, repo := newArchiveFixture(t)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, _ := w.Create("nested/TestStatusReport.pdf")
	_, _ = f.Write([]byte("%PDF-1.7 zipped"))
	_ = w.Close()

	record, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1",
		DocVersion:       "2.0",
		Maturity:         archive.MaturityReviewed,
		OriginalFilename: "bundle.zip",
		Data:             buf.Bytes(),
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(repo.Root(), record.SavedPath))
	if err != nil {
		t.Fatalf("read archived file: %v", err)
	}
	if string(data) != "%PDF-1.7 zipped" {
		t.Error("zip payload was not extracted")
	}
}

func TestArchiveService_Store_LastWriteWins(t *testing.T) {
	svc, repo := newArchiveFixture(t)

	for _, version := range []string{"1.0", "2.0"} {
		_, err := svc.Store(application.StoreRequest{
			TemplateID:       "TSTR",
			ReleaseName:      "R1",
			DocVersion:       version,
			Maturity:         archive.MaturityDraft,
			OriginalFilename: "report.pdf",
			Data:             []byte("%PDF " + version),
		})
		if err != nil {
			t.Fatalf("Store %s: %v", version, err)
		}
	}

	rec, ok := svc.Session().Get("R1", "TSTR")
	if !ok {
		t.Fatal("expected session record")
	}
	if rec.DocVersion != "2.0" {
		t.Errorf("expected last write to win, got %q", rec.DocVersion)
	}

	persisted, err := repo.LoadRecords()
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if len(persisted) != 1 || persisted[0].DocVersion != "2.0" {
		t.Errorf("unexpected persisted records: %+v", persisted)
	}
}

func TestArchiveService_Store_RejectsBadInput(t *testing.T) {
	svc, _ := newArchiveFixture(t)

	tests := []struct {
		name string
		req  application.StoreRequest
	}{
		{"missing release", application.StoreRequest{TemplateID: "TSTR", DocVersion: "1.0", Maturity: archive.MaturityDraft, OriginalFilename: "r.pdf", Data: []byte("x")}},
		{"missing version", application.StoreRequest{TemplateID: "TSTR", ReleaseName: "R1", Maturity: archive.MaturityDraft, OriginalFilename: "r.pdf", Data: []byte("x")}},
		{"bad maturity", application.StoreRequest{TemplateID: "TSTR", ReleaseName: "R1", DocVersion: "1.0", Maturity: "Antique", OriginalFilename: "r.pdf", Data: []byte("x")}},
		{"unknown template", application.StoreRequest{TemplateID: "NOPE", ReleaseName: "R1", DocVersion: "1.0", Maturity: archive.MaturityDraft, OriginalFilename: "r.pdf", Data: []byte("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Store(tt.req); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestArchiveService_Store_UnsupportedFormat(t *testing.T) {
	svc, _ := newArchiveFixture(t)

	_, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1",
		DocVersion:       "1.0",
		Maturity:         archive.MaturityDraft,
		OriginalFilename: "report.docx",
		Data:             []byte("word"),
	})
	var ferr *archive.UnsupportedFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
}

func TestArchiveService_ResetRelease(t *testing.T) {
	svc, repo := newArchiveFixture(t)

	_, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1",
		DocVersion:       "1.0",
		Maturity:         archive.MaturityDraft,
		OriginalFilename: "report.pdf",
		Data:             []byte("%PDF"),
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if err := svc.ResetRelease("R1"); err != nil {
		t.Fatalf("ResetRelease: %v", err)
	}
	if svc.Session().Count("R1") != 0 {
		t.Error("expected session to be empty after reset")
	}

	persisted, err := repo.LoadRecords()
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if len(persisted) != 0 {
		t.Errorf("expected no persisted records, got %d", len(persisted))
	}
}

func TestArchiveService_LoadSession(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := repo.SaveRecords([]archive.UploadRecord{
		{TemplateID: "TSTR", ReleaseName: "R1", DocVersion: "1.0", Maturity: archive.MaturityDraft},
	}); err != nil {
		t.Fatalf("SaveRecords: %v", err)
	}

	svc := application.NewArchiveService(repo, nil)
	if err := svc.LoadSession(); err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if _, ok := svc.Session().Get("R1", "TSTR"); !ok {
		t.Error("expected restored record in session")
	}
}

func TestArchiveService_Store_OutOfLifecycleMaturity(t *testing.T) {
	svc, _ := newArchiveFixture(t)

	_, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1",
		DocVersion:       "1.0",
		Maturity:         archive.MaturityDraft,
		OriginalFilename: "report.pdf",
		Data:             []byte("%PDF draft"),
	})
	if err != nil {
		t.Fatalf("Store draft: %v", err)
	}

	record, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1",
		DocVersion:       "2.0",
		Maturity:         archive.MaturityReleased,
		OriginalFilename: "report.pdf",
		Data:             []byte("%PDF released"),
	})
	var lifecycle *archive.LifecycleViolationError
	if !errors.As(err, &lifecycle) {
		t.Fatalf("expected a lifecycle violation, got %v", err)
	}
	if lifecycle.From != archive.MaturityDraft || lifecycle.To != archive.MaturityReleased {
		t.Errorf("unexpected violation: %+v", lifecycle)
	}
	if record == nil {
		t.Fatal("document should still be archived on a lifecycle violation")
	}

	rec, ok := svc.Session().Get("R1", "TSTR")
	if !ok || rec.Maturity != archive.MaturityReleased {
		t.Errorf("expected the re-upload to win, got %+v", rec)
	}

	// A review step is a legal follow-up and must pass cleanly.
	if _, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1",
		DocVersion:       "2.1",
		Maturity:         archive.MaturityDraft,
		OriginalFilename: "report.pdf",
		Data:             []byte("%PDF rework"),
	}); err != nil {
		t.Fatalf("Store rework: %v", err)
	}
	if _, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1",
		DocVersion:       "2.2",
		Maturity:         archive.MaturityReviewed,
		OriginalFilename: "report.pdf",
		Data:             []byte("%PDF reviewed"),
	}); err != nil {
		t.Fatalf("Store reviewed: %v", err)
	}
}

func TestArchiveService_Store_AuditAppendFailure(t *testing.T) {
	svc, repo := newArchiveFixture(t)

	// A directory in place of the events file makes every append fail.
	eventsPath := filepath.Join(repo.Root(), storage.BaselinerDir, storage.EventsFile)
	if err := os.Mkdir(eventsPath, 0o755); err != nil {
		t.Fatalf("mkdir events path: %v", err)
	}

	record, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1",
		DocVersion:       "1.0",
		Maturity:         archive.MaturityDraft,
		OriginalFilename: "report.pdf",
		Data:             []byte("%PDF body"),
	})
	if err == nil || !strings.Contains(err.Error(), "audit event append failed") {
		t.Fatalf("expected an audit append error, got %v", err)
	}
	if record == nil {
		t.Fatal("document should still be archived when the audit append fails")
	}

	if _, statErr := os.Stat(filepath.Join(repo.Root(), record.SavedPath)); statErr != nil {
		t.Errorf("archived file missing: %v", statErr)
	}
	lines, logErr := repo.ReadUploadLog("uploads.log")
	if logErr != nil {
		t.Fatalf("ReadUploadLog: %v", logErr)
	}
	if len(lines) != 1 {
		t.Errorf("expected the upload log line despite the audit failure, got %d lines", len(lines))
	}
}

func TestArchiveService_Store_ZipWithoutPayloadWritesNothing(t *testing.T) {
	svc, repo := newArchiveFixture(t)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, _ := w.Create("notes.txt")
	_, _ = f.Write([]byte("no document here"))
	_ = w.Close()

	record, err := svc.Store(application.StoreRequest{
		TemplateID:       "TSTR",
		ReleaseName:      "R1",
		DocVersion:       "1.0",
		Maturity:         archive.MaturityDraft,
		OriginalFilename: "bundle.zip",
		Data:             buf.Bytes(),
	})
	var notFound *archive.PayloadNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected a missing payload error, got %v", err)
	}
	if record != nil {
		t.Fatalf("expected no record, got %+v", record)
	}

	if _, statErr := os.Stat(filepath.Join(repo.Root(), "output_folder")); !os.IsNotExist(statErr) {
		t.Error("no file should be written when the zip lacks the document")
	}
	if _, ok := svc.Session().Get("R1", "TSTR"); ok {
		t.Error("no session record should exist for a rejected upload")
	}
	lines, logErr := repo.ReadUploadLog("uploads.log")
	if logErr != nil {
		t.Fatalf("ReadUploadLog: %v", logErr)
	}
	if len(lines) != 0 {
		t.Errorf("expected no upload log lines, got %d", len(lines))
	}
}
