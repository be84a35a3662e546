package assessment

import (
	"encoding/json"
	"fmt"
)

// DefaultCostThreshold is the cost above which a change picks up the cost
// penalty when the caller does not configure its own threshold.
const DefaultCostThreshold = 20000

// Scoring weights. The values are part of the CCB process definition and
// must not drift between releases.
const (
	weightScopeMultiple  = 2
	weightSafetyImpact   = 5
	weightRiskModerate   = 2
	weightRiskHigh       = 4
	weightCoveragePart   = 2
	weightCoverageNone   = 4
	weightCostExceeded   = 2
	weightTeamsTwoThree  = 2
	weightTeamsMore      = 4
	weightUrgentCritical = -1
)

// Tier is the review path recommended for a scored change.
type Tier string

const (
	TierFastTrack   Tier = "fast_track"
	TierNeedsReview Tier = "needs_review"
	TierFullReview  Tier = "full_review"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierFastTrack, TierNeedsReview, TierFullReview:
		return true
	default:
		return false
	}
}

func (t Tier) String() string { return string(t) }

// DisplayName returns a human-readable description of the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierFastTrack:
		return "Fast-track approved"
	case TierNeedsReview:
		return "Needs additional review"
	case TierFullReview:
		return "Full CCB review required"
	default:
		return string(t)
	}
}

// NextSteps returns the recommended follow-up actions for the tier.
func (t Tier) NextSteps() []string {
	switch t {
	case TierFastTrack:
		return []string{
			"Document change in CCB system",
			"Notify stakeholders",
			"Proceed with implementation",
		}
	case TierNeedsReview:
		return []string{
			"Review risk mitigation",
			"Consider smaller changes",
			"Consult technical leads",
		}
	case TierFullReview:
		return []string{
			"Schedule CCB review",
			"Prepare documentation",
			"Analyze impact",
		}
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tier := Tier(s)
	if !tier.IsValid() {
		return fmt.Errorf("invalid tier: %s", s)
	}
	*t = tier
	return nil
}

// FactorDelta records one factor's contribution to the total score.
type FactorDelta struct {
	Factor string `json:"factor"`
	Reason string `json:"reason"`
	Delta  int    `json:"delta"`
}

// ScoreResult is the outcome of evaluating one assessment.
type ScoreResult struct {
	Score     int           `json:"score"`
	Tier      Tier          `json:"tier"`
	Breakdown []FactorDelta `json:"breakdown"`
}

// TierForScore maps a total score onto its review tier.
func TierForScore(score int) Tier {
	switch {
	case score <= 4:
		return TierFastTrack
	case score <= 8:
		return TierNeedsReview
	default:
		return TierFullReview
	}
}

// Evaluate scores an assessment against the fixed CCB weights. A
// costThreshold of zero or less selects DefaultCostThreshold. The returned
// breakdown lists every factor, including those that contributed nothing, so
// callers can render the full reasoning.
func Evaluate(a ChangeAssessment, costThreshold float64) (ScoreResult, error) {
	if err := a.Validate(); err != nil {
		return ScoreResult{}, err
	}
	if costThreshold <= 0 {
		costThreshold = DefaultCostThreshold
	}

	breakdown := make([]FactorDelta, 0, 7)
	add := func(factor, reason string, delta int) {
		breakdown = append(breakdown, FactorDelta{Factor: factor, Reason: reason, Delta: delta})
	}

	switch a.Scope {
	case ScopeMultiple:
		add("scope", "affects multiple systems", weightScopeMultiple)
	default:
		add("scope", "isolated to one component", 0)
	}

	switch a.SafetyImpact {
	case SafetyImpacted:
		add("safety_impact", "possible safety or compliance impact", weightSafetyImpact)
	default:
		add("safety_impact", "no safety or compliance impact", 0)
	}

	switch a.TechnicalRisk {
	case RiskModerate:
		add("technical_risk", "moderate technical risk", weightRiskModerate)
	case RiskHigh:
		add("technical_risk", "high technical risk", weightRiskHigh)
	default:
		add("technical_risk", "very low technical risk", 0)
	}

	switch a.TestCoverage {
	case CoveragePartial:
		add("test_coverage", "partially tested", weightCoveragePart)
	case CoverageNotTested:
		add("test_coverage", "not tested", weightCoverageNone)
	default:
		add("test_coverage", "fully tested", 0)
	}

	if a.EstimatedCost > costThreshold {
		add("estimated_cost", fmt.Sprintf("cost exceeds %.0f", costThreshold), weightCostExceeded)
	} else {
		add("estimated_cost", fmt.Sprintf("cost within %.0f", costThreshold), 0)
	}

	switch a.TeamsInvolved {
	case TeamsTwoOrThree:
		add("teams_involved", "2-3 teams involved", weightTeamsTwoThree)
	case TeamsMoreVendor:
		add("teams_involved", "more than 3 teams or external vendor", weightTeamsMore)
	default:
		add("teams_involved", "single team", 0)
	}

	switch a.Urgency {
	case UrgencyCritical:
		add("urgency", "needed to meet release date", weightUrgentCritical)
	default:
		add("urgency", "not release-critical", 0)
	}

	score := 0
	for _, d := range breakdown {
		score += d.Delta
	}

	return ScoreResult{
		Score:     score,
		Tier:      TierForScore(score),
		Breakdown: breakdown,
	}, nil
}
