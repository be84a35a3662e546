package application

import (
	"fmt"

	"github.com/baselinehq/baseliner/pkg/domain"
	"github.com/baselinehq/baseliner/pkg/domain/assessment"
)

// EvaluationService scores change assessments with the workspace's
// configured cost threshold.
type EvaluationService struct {
	repo  domain.WorkspaceRepository
	audit domain.AuditLogger
}

func NewEvaluationService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *EvaluationService {
	return &EvaluationService{repo: repo, audit: audit}
}

// Evaluate scores one assessment and records the outcome in the audit trail.
func (s *EvaluationService) Evaluate(a assessment.ChangeAssessment) (*assessment.ScoreResult, error) {
	cfg, err := s.repo.LoadConfig()
	if err != nil {
		return nil, err
	}

	result, err := assessment.Evaluate(a, cfg.CostThreshold)
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		err := s.audit.Log("assessment.evaluate", "human", map[string]interface{}{
			"score": result.Score,
			"tier":  result.Tier.String(),
		})
		if err != nil {
			return nil, fmt.Errorf("record audit event: %w", err)
		}
	}

	return &result, nil
}
