package domain

import (
	"github.com/baselinehq/baseliner/pkg/domain/archive"
)

// WorkspaceRepository handles the persistence of baseliner artifacts in the
// .baseliner/ directory and the archived documents under the output base dir.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SaveConfig(cfg *archive.Config) error
	LoadConfig() (*archive.Config, error)
	SaveCatalog(templates []archive.DocumentTemplate) error
	LoadCatalog() (*archive.Catalog, error)
	SaveRecords(records []archive.UploadRecord) error
	LoadRecords() ([]archive.UploadRecord, error)
	WriteDocument(path string, data []byte) error
	AppendUploadLine(logFile, line string) error
	ReadUploadLog(logFile string) ([]string, error)
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
}
