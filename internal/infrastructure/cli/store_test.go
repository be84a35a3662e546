package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreCmd_ArchivesDocument(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()

	if err := runCommand(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	src := filepath.Join(dir, "TestStatusReport.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4 test"), 0600); err != nil {
		t.Fatalf("write source: %v", err)
	}

	out := captureStdout(t, func() {
		err := runCommand(t, "store", src,
			"--template", "TSTR",
			"--release", "R1 2025",
			"--doc-version", "1.1",
			"--maturity", "draft")
		if err != nil {
			t.Fatalf("store failed: %v", err)
		}
	})

	if !strings.Contains(out, "TEST_TestStatusReport_1.1_draft.pdf") {
		t.Errorf("expected canonical filename in output, got %q", out)
	}

	saved := filepath.Join(dir, "output_folder", "R1_2025", "Test_and_Validation",
		"TestStatusReport", "TEST_TestStatusReport_1.1_draft.pdf")
	if _, err := os.Stat(saved); err != nil {
		t.Errorf("archived file missing: %v", err)
	}
}

func TestStoreCmd_UnknownTemplate(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()

	if err := runCommand(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	src := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4"), 0600); err != nil {
		t.Fatalf("write source: %v", err)
	}

	err := runCommand(t, "store", src,
		"--template", "NOPE",
		"--release", "R1",
		"--doc-version", "1.0")
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if !strings.Contains(err.Error(), "unknown document template") {
		t.Errorf("unexpected error: %v", err)
	}
}
