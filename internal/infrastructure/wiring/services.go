package wiring

import (
	"github.com/baselinehq/baseliner/pkg/application"
	"github.com/baselinehq/baseliner/pkg/domain/ai"
)

// AppServices bundles the application services the CLI commands depend on.
type AppServices struct {
	Workspace      *Workspace
	Archive        *application.ArchiveService
	Evaluation     *application.EvaluationService
	Overview       *application.OverviewService
	Classification *application.ClassificationService
	Summary        *application.SummaryService
	Provider       ai.Provider
}

// BuildAppServices wires the full service graph for a workspace root. The
// AI provider is resolved lazily by the commands that need it; failure to
// configure one must not break the archiving commands.
func BuildAppServices(root string) (*AppServices, error) {
	ws := NewWorkspace(root)

	archiveSvc := application.NewArchiveService(ws.Repo, ws.Audit)
	if err := archiveSvc.LoadSession(); err != nil {
		return nil, err
	}

	svcs := &AppServices{
		Workspace:  ws,
		Archive:    archiveSvc,
		Evaluation: application.NewEvaluationService(ws.Repo, ws.Audit),
		Overview:   application.NewOverviewService(ws.Repo),
	}

	if provider, err := LoadAIProvider(root); err == nil {
		svcs.Provider = provider
		svcs.Classification = application.NewClassificationService(provider, ws.Audit)
		svcs.Summary = application.NewSummaryService(provider, ws.Audit)
	}

	return svcs, nil
}
