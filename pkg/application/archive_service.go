package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/baselinehq/baseliner/pkg/domain"
	"github.com/baselinehq/baseliner/pkg/domain/archive"
)

// StoreRequest describes one document upload.
type StoreRequest struct {
	TemplateID       string
	ReleaseName      string
	DocVersion       string
	Maturity         archive.Maturity
	OriginalFilename string
	Data             []byte
}

// ArchiveService runs the archiving pipeline: resolve the payload, write it
// to its canonical path, append the upload log line and update the session
// records. The pipeline never retries; a failed step surfaces immediately.
type ArchiveService struct {
	repo    domain.WorkspaceRepository
	audit   domain.AuditLogger
	session *archive.Session
	now     func() time.Time
}

func NewArchiveService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *ArchiveService {
	return &ArchiveService{
		repo:    repo,
		audit:   audit,
		session: archive.NewSession(),
		now:     time.Now,
	}
}

// LoadSession restores persisted upload records into the in-memory session.
func (s *ArchiveService) LoadSession() error {
	records, err := s.repo.LoadRecords()
	if err != nil {
		return err
	}
	s.session.Load(records)
	return nil
}

// Session exposes the current upload records.
func (s *ArchiveService) Session() *archive.Session {
	return s.session
}

// Store archives one uploaded document. Re-storing the same template for the
// same release overwrites the previous document and record.
func (s *ArchiveService) Store(req StoreRequest) (*archive.UploadRecord, error) {
	if req.ReleaseName == "" {
		return nil, fmt.Errorf("release name is required")
	}
	if req.DocVersion == "" {
		return nil, fmt.Errorf("document version is required")
	}
	if !req.Maturity.IsValid() {
		return nil, fmt.Errorf("invalid maturity: %s", req.Maturity)
	}

	catalog, err := s.repo.LoadCatalog()
	if err != nil {
		return nil, err
	}
	tmpl, ok := catalog.ByID(req.TemplateID)
	if !ok {
		return nil, fmt.Errorf("unknown document template: %s", req.TemplateID)
	}

	cfg, err := s.repo.LoadConfig()
	if err != nil {
		return nil, err
	}

	payload, err := archive.ResolvePayload(req.Data, req.OriginalFilename, tmpl, *cfg)
	if err != nil {
		return nil, err
	}

	filename := cfg.CanonicalFilename(tmpl, req.DocVersion, req.Maturity)
	dir := cfg.CanonicalDir(tmpl, req.ReleaseName)
	path := filepath.Join(dir, filename)

	if err := s.repo.WriteDocument(path, payload); err != nil {
		return nil, &archive.WriteFailedError{File: req.OriginalFilename, Path: path, Err: err}
	}

	record := archive.UploadRecord{
		TemplateID:       tmpl.ID,
		ReleaseName:      req.ReleaseName,
		DocVersion:       req.DocVersion,
		Maturity:         req.Maturity,
		OriginalFilename: req.OriginalFilename,
		SavedFilename:    filename,
		SavedPath:        path,
		Timestamp:        s.now(),
	}

	// A re-upload replaces the record either way; an out-of-order maturity
	// only degrades the result.
	var lifecycle *archive.LifecycleViolationError
	if prior, ok := s.session.Get(req.ReleaseName, tmpl.ID); ok {
		if prior.Maturity != req.Maturity && !prior.Maturity.CanTransitionTo(req.Maturity) {
			lifecycle = &archive.LifecycleViolationError{
				File: req.OriginalFilename,
				From: prior.Maturity,
				To:   req.Maturity,
			}
		}
	}

	s.session.Put(record)
	if err := s.repo.SaveRecords(s.session.All()); err != nil {
		return nil, err
	}

	line := uploadLogLine(record, tmpl, dir)
	if err := s.repo.AppendUploadLine(cfg.LogFile, line); err != nil {
		// The document is already on disk; report the degraded log only.
		return &record, &archive.LogAppendError{File: req.OriginalFilename, Err: err}
	}

	if s.audit != nil {
		err := s.audit.Log("document.store", "human", map[string]interface{}{
			"template_id": tmpl.ID,
			"release":     req.ReleaseName,
			"version":     req.DocVersion,
			"maturity":    req.Maturity.String(),
			"saved_as":    filename,
		})
		if err != nil {
			return &record, fmt.Errorf("document %q saved, but audit event append failed: %w", req.OriginalFilename, err)
		}
	}

	if lifecycle != nil {
		return &record, lifecycle
	}
	return &record, nil
}

// ResetRelease drops all session records of one release and persists the
// remainder. Archived files stay on disk.
func (s *ArchiveService) ResetRelease(release string) error {
	s.session.Reset(release)
	if err := s.repo.SaveRecords(s.session.All()); err != nil {
		return err
	}
	if s.audit != nil {
		if err := s.audit.Log("release.reset", "human", map[string]interface{}{"release": release}); err != nil {
			return fmt.Errorf("record audit event: %w", err)
		}
	}
	return nil
}

// UploadLog returns the raw upload log lines, oldest first.
func (s *ArchiveService) UploadLog() ([]string, error) {
	cfg, err := s.repo.LoadConfig()
	if err != nil {
		return nil, err
	}
	return s.repo.ReadUploadLog(cfg.LogFile)
}

func uploadLogLine(r archive.UploadRecord, tmpl archive.DocumentTemplate, dir string) string {
	return fmt.Sprintf("%s - Release: %s - Doc: '%s' (Ver: %s, Mat: %s) - OrigFile: '%s' -> Saved as: '%s' in '%s'",
		r.Timestamp.Format(time.RFC3339),
		r.ReleaseName,
		tmpl.DisplayName,
		r.DocVersion,
		r.Maturity,
		r.OriginalFilename,
		r.SavedFilename,
		dir,
	)
}
