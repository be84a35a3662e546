package archive

import (
	"sort"
	"time"
)

// UploadRecord is the session-visible result of archiving one document.
type UploadRecord struct {
	TemplateID       string    `json:"template_id"`
	ReleaseName      string    `json:"release_name"`
	DocVersion       string    `json:"doc_version"`
	Maturity         Maturity  `json:"maturity"`
	OriginalFilename string    `json:"original_filename"`
	SavedFilename    string    `json:"saved_filename"`
	SavedPath        string    `json:"saved_path"`
	Timestamp        time.Time `json:"timestamp"`
}

// Session tracks upload records keyed by release and template. Re-uploading
// the same template for the same release overwrites the previous record;
// the last write wins.
type Session struct {
	records map[string]map[string]UploadRecord
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{records: make(map[string]map[string]UploadRecord)}
}

// Put stores a record, replacing any earlier record for the same release
// and template.
func (s *Session) Put(r UploadRecord) {
	byTemplate, ok := s.records[r.ReleaseName]
	if !ok {
		byTemplate = make(map[string]UploadRecord)
		s.records[r.ReleaseName] = byTemplate
	}
	byTemplate[r.TemplateID] = r
}

// Get returns the record for one release and template.
func (s *Session) Get(release, templateID string) (UploadRecord, bool) {
	r, ok := s.records[release][templateID]
	return r, ok
}

// ForRelease returns a copy of all records of one release keyed by template.
func (s *Session) ForRelease(release string) map[string]UploadRecord {
	out := make(map[string]UploadRecord, len(s.records[release]))
	for id, r := range s.records[release] {
		out[id] = r
	}
	return out
}

// Releases returns the names of all releases with at least one record,
// sorted.
func (s *Session) Releases() []string {
	var out []string
	for release, byTemplate := range s.records {
		if len(byTemplate) > 0 {
			out = append(out, release)
		}
	}
	sort.Strings(out)
	return out
}

// Reset drops all records of one release.
func (s *Session) Reset(release string) {
	delete(s.records, release)
}

// Count returns the number of records for one release.
func (s *Session) Count(release string) int {
	return len(s.records[release])
}

// All returns every record in deterministic order: by release name, then by
// template id.
func (s *Session) All() []UploadRecord {
	var out []UploadRecord
	for _, release := range s.Releases() {
		byTemplate := s.records[release]
		ids := make([]string, 0, len(byTemplate))
		for id := range byTemplate {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			out = append(out, byTemplate[id])
		}
	}
	return out
}

// Load replaces the session contents with the given records.
func (s *Session) Load(records []UploadRecord) {
	s.records = make(map[string]map[string]UploadRecord)
	for _, r := range records {
		s.Put(r)
	}
}
