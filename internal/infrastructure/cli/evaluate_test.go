package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEvaluateCmd_FastTrack(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()

	if err := runCommand(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	out := captureStdout(t, func() {
		err := runCommand(t, "evaluate",
			"--scope", "isolated",
			"--safety", "none",
			"--risk", "very_low",
			"--coverage", "fully",
			"--cost", "1200",
			"--teams", "one",
			"--urgency", "important")
		if err != nil {
			t.Fatalf("evaluate failed: %v", err)
		}
	})

	if !strings.Contains(out, "Score: 0") {
		t.Errorf("expected score 0, got %q", out)
	}
	if !strings.Contains(out, "fast_track") {
		t.Errorf("expected fast_track tier, got %q", out)
	}
}

func TestEvaluateCmd_JSONOutput(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()

	if err := runCommand(t, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	evalJSON = true
	defer func() { evalJSON = false }()

	out := captureStdout(t, func() {
		err := runCommand(t, "evaluate",
			"--scope", "multiple",
			"--safety", "impact",
			"--risk", "high",
			"--coverage", "not_tested",
			"--cost", "45000",
			"--teams", "more_or_vendor",
			"--urgency", "critical")
		if err != nil {
			t.Fatalf("evaluate failed: %v", err)
		}
	})

	var result evaluateJSONOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if result.Score != 20 {
		t.Errorf("expected score 20, got %d", result.Score)
	}
	if string(result.Tier) != "full_review" {
		t.Errorf("expected full_review, got %s", result.Tier)
	}
	if len(result.Breakdown) != 7 {
		t.Errorf("expected 7 breakdown entries, got %d", len(result.Breakdown))
	}
}

func TestEvaluateCmd_RejectsInvalidScope(t *testing.T) {
	_, cleanup := withTempDir(t)
	defer cleanup()

	err := runCommand(t, "evaluate",
		"--scope", "galactic",
		"--safety", "none",
		"--risk", "very_low",
		"--coverage", "fully",
		"--cost", "0",
		"--teams", "one",
		"--urgency", "important")
	if err == nil {
		t.Fatal("expected error for invalid scope")
	}
}
