package archive

import (
	"testing"
	"time"
)

func makeRecord(release, templateID, version string) UploadRecord {
	return UploadRecord{
		TemplateID:       templateID,
		ReleaseName:      release,
		DocVersion:       version,
		Maturity:         MaturityDraft,
		OriginalFilename: "upload.pdf",
		SavedFilename:    "TEST_TestStatusReport_" + version + "_draft.pdf",
		SavedPath:        "out/somewhere",
		Timestamp:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSession_LastWriteWins(t *testing.T) {
	s := NewSession()

	s.Put(makeRecord("R1", "TSTR", "1.0"))
	s.Put(makeRecord("R1", "TSTR", "2.0"))

	r, ok := s.Get("R1", "TSTR")
	if !ok {
		t.Fatal("expected record to exist")
	}
	if r.DocVersion != "2.0" {
		t.Errorf("expected last write to win, got version %q", r.DocVersion)
	}
	if s.Count("R1") != 1 {
		t.Errorf("expected a single record, got %d", s.Count("R1"))
	}
}

func TestSession_IndependentReleases(t *testing.T) {
	s := NewSession()

	s.Put(makeRecord("R1", "TSTR", "1.0"))
	s.Put(makeRecord("R2", "TSTR", "9.0"))

	r1, _ := s.Get("R1", "TSTR")
	r2, _ := s.Get("R2", "TSTR")
	if r1.DocVersion != "1.0" || r2.DocVersion != "9.0" {
		t.Error("records of different releases interfered")
	}

	releases := s.Releases()
	if len(releases) != 2 || releases[0] != "R1" || releases[1] != "R2" {
		t.Errorf("unexpected releases: %v", releases)
	}
}

func TestSession_Reset(t *testing.T) {
	s := NewSession()

	s.Put(makeRecord("R1", "TSTR", "1.0"))
	s.Put(makeRecord("R1", "KEL", "1.0"))
	s.Reset("R1")

	if s.Count("R1") != 0 {
		t.Errorf("expected reset to drop all records, got %d", s.Count("R1"))
	}
	if _, ok := s.Get("R1", "TSTR"); ok {
		t.Error("expected record to be gone after reset")
	}
}

func TestSession_AllAndLoad(t *testing.T) {
	s := NewSession()

	s.Put(makeRecord("R2", "TSTR", "1.0"))
	s.Put(makeRecord("R1", "TSTR", "1.0"))
	s.Put(makeRecord("R1", "KEL", "1.0"))

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].ReleaseName != "R1" || all[0].TemplateID != "KEL" {
		t.Errorf("unexpected first record: %s/%s", all[0].ReleaseName, all[0].TemplateID)
	}

	restored := NewSession()
	restored.Load(all)
	if len(restored.All()) != 3 {
		t.Error("load did not restore all records")
	}
	if _, ok := restored.Get("R2", "TSTR"); !ok {
		t.Error("expected R2 record after load")
	}
}
