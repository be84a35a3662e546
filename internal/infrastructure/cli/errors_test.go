package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/baselinehq/baseliner/pkg/domain/archive"
	"github.com/baselinehq/baseliner/pkg/domain/assessment"
)

func TestMapError_Nil(t *testing.T) {
	if got := MapError(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestMapError_UnsupportedFormat(t *testing.T) {
	err := MapError(&archive.UnsupportedFormatError{File: "doc.docx", Allowed: []string{".pdf", ".zip"}})

	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected CLIError, got %T", err)
	}
	if !strings.Contains(cliErr.Hint, ".pdf") {
		t.Errorf("hint should list allowed extensions, got %q", cliErr.Hint)
	}
}

func TestMapError_PayloadNotFound(t *testing.T) {
	err := MapError(&archive.PayloadNotFoundError{File: "export.zip", Expected: "TestStatusReport.pdf"})

	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected CLIError, got %T", err)
	}
	if !strings.Contains(cliErr.Hint, "TestStatusReport.pdf") {
		t.Errorf("hint should name the expected file, got %q", cliErr.Hint)
	}
}

func TestMapError_Constraint(t *testing.T) {
	err := MapError(&assessment.ConstraintError{Field: "scope", Value: "galactic"})

	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected CLIError, got %T", err)
	}
	if !strings.Contains(cliErr.Hint, "--scope") {
		t.Errorf("hint should name the flag, got %q", cliErr.Hint)
	}
}

func TestMapError_PassesThroughUnknown(t *testing.T) {
	plain := fmt.Errorf("something else")
	if got := MapError(plain); got != plain {
		t.Errorf("expected pass-through, got %v", got)
	}
}
