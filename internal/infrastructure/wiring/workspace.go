// Package wiring assembles the repository, audit trail and application
// services for a workspace root.
package wiring

import (
	"github.com/baselinehq/baseliner/pkg/application"
	"github.com/baselinehq/baseliner/pkg/storage"
)

// Workspace bundles core infrastructure dependencies.
type Workspace struct {
	Repo  *storage.FilesystemRepository
	Audit *application.AuditService
}

func NewWorkspace(root string) *Workspace {
	repo := storage.NewFilesystemRepository(root)
	return &Workspace{
		Repo:  repo,
		Audit: application.NewAuditService(repo),
	}
}
