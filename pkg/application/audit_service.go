// Package application wires the domain rules into the workspace: archiving
// uploads, scoring assessments, session bookkeeping and the audit trail.
package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/baselinehq/baseliner/pkg/domain"
)

type AuditService struct {
	repo domain.WorkspaceRepository
}

// Compile-time check that AuditService implements AuditLogger
var _ domain.AuditLogger = (*AuditService)(nil)

func NewAuditService(repo domain.WorkspaceRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Log(action string, actor string, metadata map[string]interface{}) error {
	// Get the latest event to continue the hash chain
	events, _ := s.repo.LoadEvents()
	prevHash := ""
	if len(events) > 0 {
		prevHash = events[len(events)-1].Hash
	}

	event := domain.Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Action:    action,
		Actor:     actor,
		Metadata:  metadata,
		PrevHash:  prevHash,
	}
	event.Hash = event.CalculateHash()

	return s.repo.RecordEvent(event)
}

func (s *AuditService) GetTimeline() ([]domain.Event, error) {
	return s.repo.LoadEvents()
}

// VerifyIntegrity walks the event chain and reports every broken link or
// tampered entry.
func (s *AuditService) VerifyIntegrity() ([]string, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		return nil, err
	}

	var violations []string
	lastHash := ""

	for i, e := range events {
		if e.PrevHash != lastHash {
			violations = append(violations, fmt.Sprintf("Event %d (%s): PrevHash mismatch. Audit trail broken.", i, e.ID))
		}

		expected := e.CalculateHash()
		if e.Hash != expected {
			violations = append(violations, fmt.Sprintf("Event %d (%s): Content hash mismatch. Possible tampering.", i, e.ID))
		}

		lastHash = e.Hash
	}

	return violations, nil
}
