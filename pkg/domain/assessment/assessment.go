// Package assessment implements the fast-track change evaluation used by the
// Change Control Board (CCB). A ChangeAssessment captures the answers to the
// six evaluation categories; Evaluate turns them into a score and a
// review-tier recommendation.
package assessment

import "fmt"

// Scope describes how widely a change reaches into the product.
type Scope string

const (
	ScopeIsolated Scope = "isolated"
	ScopeMultiple Scope = "multiple"
)

// IsValid returns true if the scope is a known value.
func (s Scope) IsValid() bool {
	return s == ScopeIsolated || s == ScopeMultiple
}

// String returns the string representation of the scope.
func (s Scope) String() string { return string(s) }

// DisplayName returns a human-readable description of the scope.
func (s Scope) DisplayName() string {
	switch s {
	case ScopeIsolated:
		return "Isolated to one component/module"
	case ScopeMultiple:
		return "Affects multiple systems/modules"
	default:
		return string(s)
	}
}

// ParseScope parses a string into a Scope.
func ParseScope(str string) (Scope, error) {
	s := Scope(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid scope: %s", str)
	}
	return s, nil
}

// SafetyImpact describes whether a change can touch safety or compliance.
type SafetyImpact string

const (
	SafetyNone     SafetyImpact = "none"
	SafetyImpacted SafetyImpact = "impact"
)

func (s SafetyImpact) IsValid() bool {
	return s == SafetyNone || s == SafetyImpacted
}

func (s SafetyImpact) String() string { return string(s) }

func (s SafetyImpact) DisplayName() string {
	switch s {
	case SafetyNone:
		return "No safety or compliance impact"
	case SafetyImpacted:
		return "Possible impact on safety or regulations"
	default:
		return string(s)
	}
}

// ParseSafetyImpact parses a string into a SafetyImpact.
func ParseSafetyImpact(str string) (SafetyImpact, error) {
	s := SafetyImpact(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid safety impact: %s", str)
	}
	return s, nil
}

// TechnicalRisk grades the novelty and complexity of the change.
type TechnicalRisk string

const (
	RiskVeryLow  TechnicalRisk = "very_low"
	RiskModerate TechnicalRisk = "moderate"
	RiskHigh     TechnicalRisk = "high"
)

// AllTechnicalRisks returns all valid technical risk levels in ascending order.
func AllTechnicalRisks() []TechnicalRisk {
	return []TechnicalRisk{RiskVeryLow, RiskModerate, RiskHigh}
}

func (r TechnicalRisk) IsValid() bool {
	switch r {
	case RiskVeryLow, RiskModerate, RiskHigh:
		return true
	default:
		return false
	}
}

func (r TechnicalRisk) String() string { return string(r) }

func (r TechnicalRisk) DisplayName() string {
	switch r {
	case RiskVeryLow:
		return "Very low (well-known fix, low complexity)"
	case RiskModerate:
		return "Moderate (minor new logic)"
	case RiskHigh:
		return "High (novel or critical logic change)"
	default:
		return string(r)
	}
}

// ParseTechnicalRisk parses a string into a TechnicalRisk.
func ParseTechnicalRisk(str string) (TechnicalRisk, error) {
	r := TechnicalRisk(str)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid technical risk: %s", str)
	}
	return r, nil
}

// TestCoverage reports how much validation the change has already seen.
type TestCoverage string

const (
	CoverageFull      TestCoverage = "fully"
	CoveragePartial   TestCoverage = "partially"
	CoverageNotTested TestCoverage = "not_tested"
)

// AllTestCoverages returns all valid coverage levels, best first.
func AllTestCoverages() []TestCoverage {
	return []TestCoverage{CoverageFull, CoveragePartial, CoverageNotTested}
}

func (c TestCoverage) IsValid() bool {
	switch c {
	case CoverageFull, CoveragePartial, CoverageNotTested:
		return true
	default:
		return false
	}
}

func (c TestCoverage) String() string { return string(c) }

func (c TestCoverage) DisplayName() string {
	switch c {
	case CoverageFull:
		return "Fully tested (unit + integration)"
	case CoveragePartial:
		return "Partially tested"
	case CoverageNotTested:
		return "Not tested"
	default:
		return string(c)
	}
}

// ParseTestCoverage parses a string into a TestCoverage.
func ParseTestCoverage(str string) (TestCoverage, error) {
	c := TestCoverage(str)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid test coverage: %s", str)
	}
	return c, nil
}

// TeamsInvolved counts the organisational spread of the change.
type TeamsInvolved string

const (
	TeamsOne        TeamsInvolved = "one"
	TeamsTwoOrThree TeamsInvolved = "two_or_three"
	TeamsMoreVendor TeamsInvolved = "more_or_vendor"
)

// AllTeamsInvolved returns all valid team counts in ascending order.
func AllTeamsInvolved() []TeamsInvolved {
	return []TeamsInvolved{TeamsOne, TeamsTwoOrThree, TeamsMoreVendor}
}

func (t TeamsInvolved) IsValid() bool {
	switch t {
	case TeamsOne, TeamsTwoOrThree, TeamsMoreVendor:
		return true
	default:
		return false
	}
}

func (t TeamsInvolved) String() string { return string(t) }

func (t TeamsInvolved) DisplayName() string {
	switch t {
	case TeamsOne:
		return "1 team"
	case TeamsTwoOrThree:
		return "2-3 teams"
	case TeamsMoreVendor:
		return "More than 3 or external vendor"
	default:
		return string(t)
	}
}

// ParseTeamsInvolved parses a string into a TeamsInvolved.
func ParseTeamsInvolved(str string) (TeamsInvolved, error) {
	t := TeamsInvolved(str)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid teams involved: %s", str)
	}
	return t, nil
}

// Urgency grades how release-critical the change is.
type Urgency string

const (
	UrgencyCritical   Urgency = "critical"
	UrgencyImportant  Urgency = "important"
	UrgencyNiceToHave Urgency = "nice_to_have"
)

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyCritical, UrgencyImportant, UrgencyNiceToHave:
		return true
	default:
		return false
	}
}

func (u Urgency) String() string { return string(u) }

func (u Urgency) DisplayName() string {
	switch u {
	case UrgencyCritical:
		return "Needed to meet release date"
	case UrgencyImportant:
		return "Important but not release-blocking"
	case UrgencyNiceToHave:
		return "Nice to have"
	default:
		return string(u)
	}
}

// ParseUrgency parses a string into an Urgency.
func ParseUrgency(str string) (Urgency, error) {
	u := Urgency(str)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency: %s", str)
	}
	return u, nil
}

// ChangeAssessment is one completed evaluation form. Assessments are value
// objects; construct one, validate it, and pass it to Evaluate.
type ChangeAssessment struct {
	Scope         Scope         `json:"scope" yaml:"scope"`
	SafetyImpact  SafetyImpact  `json:"safety_impact" yaml:"safety_impact"`
	TechnicalRisk TechnicalRisk `json:"technical_risk" yaml:"technical_risk"`
	TestCoverage  TestCoverage  `json:"test_coverage" yaml:"test_coverage"`
	EstimatedCost float64       `json:"estimated_cost" yaml:"estimated_cost"`
	TeamsInvolved TeamsInvolved `json:"teams_involved" yaml:"teams_involved"`
	Urgency       Urgency       `json:"urgency" yaml:"urgency"`
}

// Validate checks every field against its enum domain. The engine rejects
// rather than guesses: a malformed value is a caller bug, not an input to
// score around.
func (a ChangeAssessment) Validate() error {
	if !a.Scope.IsValid() {
		return &ConstraintError{Field: "scope", Value: a.Scope.String()}
	}
	if !a.SafetyImpact.IsValid() {
		return &ConstraintError{Field: "safety_impact", Value: a.SafetyImpact.String()}
	}
	if !a.TechnicalRisk.IsValid() {
		return &ConstraintError{Field: "technical_risk", Value: a.TechnicalRisk.String()}
	}
	if !a.TestCoverage.IsValid() {
		return &ConstraintError{Field: "test_coverage", Value: a.TestCoverage.String()}
	}
	if a.EstimatedCost < 0 {
		return &ConstraintError{Field: "estimated_cost", Value: fmt.Sprintf("%g", a.EstimatedCost)}
	}
	if !a.TeamsInvolved.IsValid() {
		return &ConstraintError{Field: "teams_involved", Value: a.TeamsInvolved.String()}
	}
	if !a.Urgency.IsValid() {
		return &ConstraintError{Field: "urgency", Value: a.Urgency.String()}
	}
	return nil
}

// ConstraintError reports an assessment field outside its allowed domain.
type ConstraintError struct {
	Field string
	Value string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("assessment constraint violation: field %q has invalid value %q", e.Field, e.Value)
}
