// Package classification defines the document categories and the result
// type produced by AI-assisted document tagging.
package classification

import "fmt"

// CategoryOther is the fallback category for documents matching no known type.
const CategoryOther = "Other"

// DocumentCategories lists the PLM/PDM document types a document can be
// classified as, with the fallback category last.
func DocumentCategories() []string {
	return []string{
		"Technical Specification",
		"Requirements Document (System/Software)",
		"Bill of Materials (BOM)",
		"Engineering Change Request (ECR)",
		"Engineering Change Order (ECO)",
		"CAD Drawing (2D/3D)",
		"Failure Mode and Effects Analysis (FMEA)",
		"Test Plan / Test Case",
		"Test Report / Validation Report",
		"User Manual / Operator Guide",
		"Manufacturing Process Plan",
		"Quality Inspection Report",
		"Supplier Qualification Document",
		"Project Plan",
		"Risk Analysis Report",
		CategoryOther,
	}
}

// IsKnownCategory reports whether the category is in the predefined list.
func IsKnownCategory(category string) bool {
	for _, c := range DocumentCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// Result is one document's classification outcome.
type Result struct {
	Category        string   `json:"category"`
	ConfidenceScore int      `json:"confidence_score"`
	Tags            []string `json:"tags"`
	Reasoning       string   `json:"reasoning"`
}

// Validate checks that the result is structurally sound. An unknown
// category is legal input (the caller folds it into Other), but the
// confidence score must stay within its range.
func (r Result) Validate() error {
	if r.Category == "" {
		return fmt.Errorf("classification result missing category")
	}
	if r.ConfidenceScore < 0 || r.ConfidenceScore > 100 {
		return fmt.Errorf("confidence score %d out of range 0-100", r.ConfidenceScore)
	}
	return nil
}

// Normalize folds unknown categories into Other.
func (r Result) Normalize() Result {
	if !IsKnownCategory(r.Category) {
		r.Category = CategoryOther
	}
	return r
}
