package classification

import "testing"

func TestDocumentCategories(t *testing.T) {
	cats := DocumentCategories()
	if len(cats) != 16 {
		t.Errorf("expected 16 categories, got %d", len(cats))
	}
	if cats[len(cats)-1] != CategoryOther {
		t.Errorf("expected %q last, got %q", CategoryOther, cats[len(cats)-1])
	}
}

func TestIsKnownCategory(t *testing.T) {
	if !IsKnownCategory("Project Plan") {
		t.Error("expected Project Plan to be known")
	}
	if !IsKnownCategory(CategoryOther) {
		t.Error("expected Other to be known")
	}
	if IsKnownCategory("Shopping List") {
		t.Error("unexpected known category")
	}
}

func TestResult_Validate(t *testing.T) {
	valid := Result{Category: "Project Plan", ConfidenceScore: 90}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := (Result{ConfidenceScore: 50}).Validate(); err == nil {
		t.Error("expected error for missing category")
	}
	if err := (Result{Category: "Project Plan", ConfidenceScore: 101}).Validate(); err == nil {
		t.Error("expected error for out-of-range confidence")
	}
	if err := (Result{Category: "Project Plan", ConfidenceScore: -1}).Validate(); err == nil {
		t.Error("expected error for negative confidence")
	}
}

func TestResult_Normalize(t *testing.T) {
	r := Result{Category: "Shopping List", ConfidenceScore: 40}
	if got := r.Normalize().Category; got != CategoryOther {
		t.Errorf("expected unknown category to fold into %q, got %q", CategoryOther, got)
	}

	known := Result{Category: "Risk Analysis Report", ConfidenceScore: 80}
	if got := known.Normalize().Category; got != "Risk Analysis Report" {
		t.Errorf("known category changed to %q", got)
	}
}
