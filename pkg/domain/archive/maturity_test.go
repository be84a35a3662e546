package archive

import (
	"encoding/json"
	"testing"
)

func TestMaturity_IsValid(t *testing.T) {
	for _, m := range AllMaturities() {
		if !m.IsValid() {
			t.Errorf("expected %s to be valid", m)
		}
	}
	if Maturity("Ancient").IsValid() {
		t.Error("unexpected valid maturity")
	}
}

func TestMaturity_Token(t *testing.T) {
	if got := MaturityReleased.Token(); got != "released" {
		t.Errorf("unexpected token: %q", got)
	}
}

func TestParseMaturity(t *testing.T) {
	tests := []struct {
		input   string
		want    Maturity
		wantErr bool
	}{
		{"Draft", MaturityDraft, false},
		{"draft", MaturityDraft, false},
		{"RELEASED", MaturityReleased, false},
		{"reviewed", MaturityReviewed, false},
		{"antique", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMaturity(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMaturity(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMaturity(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMaturity(%q) = %s, expected %s", tt.input, got, tt.want)
		}
	}
}

func TestMaturity_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Maturity
		to      Maturity
		allowed bool
	}{
		{MaturityDraft, MaturityReviewed, true},
		{MaturityDraft, MaturityReleased, false},
		{MaturityReviewed, MaturityReleased, true},
		{MaturityReviewed, MaturityDraft, true},
		{MaturityReleased, MaturityObsolete, true},
		{MaturityReleased, MaturityDraft, true},
		{MaturityObsolete, MaturityDraft, false},
		{MaturityObsolete, MaturityReleased, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, expected %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestMaturity_JSONRejectsUnknown(t *testing.T) {
	var m Maturity
	if err := json.Unmarshal([]byte(`"Antique"`), &m); err == nil {
		t.Error("expected error for unknown maturity")
	}
	if err := json.Unmarshal([]byte(`"released"`), &m); err != nil {
		t.Errorf("expected case-insensitive parse, got %v", err)
	}
	if m != MaturityReleased {
		t.Errorf("expected %s, got %s", MaturityReleased, m)
	}
}

func TestMaturityStateMachine_Lifecycle(t *testing.T) {
	sm, err := NewMaturityStateMachine(MaturityDraft, "TSTR")
	if err != nil {
		t.Fatalf("failed to create machine: %v", err)
	}

	steps := []struct {
		event string
		want  Maturity
	}{
		{EventReview, MaturityReviewed},
		{EventRelease, MaturityReleased},
		{EventObsolete, MaturityObsolete},
	}
	for _, step := range steps {
		if err := sm.Transition(step.event); err != nil {
			t.Fatalf("transition %q failed: %v", step.event, err)
		}
		if sm.CurrentMaturity() != step.want {
			t.Errorf("expected %s after %q, got %s", step.want, step.event, sm.CurrentMaturity())
		}
	}

	if !sm.IsFinal() {
		t.Error("expected obsolete to be final")
	}
	if err := sm.Transition(EventRework); err == nil {
		t.Error("expected rework from obsolete to fail")
	}
}

func TestMaturityStateMachine_Rework(t *testing.T) {
	sm, err := NewMaturityStateMachine(MaturityReleased, "TSTR")
	if err != nil {
		t.Fatalf("failed to create machine: %v", err)
	}

	if err := sm.Transition(EventRework); err != nil {
		t.Fatalf("rework failed: %v", err)
	}
	if sm.CurrentMaturity() != MaturityDraft {
		t.Errorf("expected %s after rework, got %s", MaturityDraft, sm.CurrentMaturity())
	}
}

func TestMaturityStateMachine_InvalidEvent(t *testing.T) {
	sm, err := NewMaturityStateMachine(MaturityDraft, "TSTR")
	if err != nil {
		t.Fatalf("failed to create machine: %v", err)
	}

	if err := sm.Transition(EventRelease); err == nil {
		t.Error("expected release from draft to fail")
	}
	if sm.CurrentMaturity() != MaturityDraft {
		t.Errorf("state changed on rejected event: %s", sm.CurrentMaturity())
	}
}

func TestMaturityStateMachine_InvalidInitial(t *testing.T) {
	if _, err := NewMaturityStateMachine("Antique", "TSTR"); err == nil {
		t.Error("expected invalid initial maturity to be rejected")
	}
}

func TestEventForTarget(t *testing.T) {
	tests := []struct {
		target Maturity
		event  string
	}{
		{MaturityDraft, EventRework},
		{MaturityReviewed, EventReview},
		{MaturityReleased, EventRelease},
		{MaturityObsolete, EventObsolete},
	}

	for _, tt := range tests {
		event, ok := EventForTarget(tt.target)
		if !ok || event != tt.event {
			t.Errorf("EventForTarget(%s) = %q, %v, expected %q", tt.target, event, ok, tt.event)
		}
	}

	if _, ok := EventForTarget(Maturity("mystery")); ok {
		t.Error("unknown maturity should map to no event")
	}
}
