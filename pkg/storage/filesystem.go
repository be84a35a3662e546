// Package storage persists baseliner artifacts on the local filesystem:
// workspace metadata under .baseliner/, archived documents under the
// configured output directory and the append-only upload log.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/baselinehq/baseliner/pkg/domain"
	"github.com/baselinehq/baseliner/pkg/domain/archive"
)

const BaselinerDir = ".baseliner"
const ConfigFile = "config.yaml"
const CatalogFile = "catalog.yaml"
const RecordsFile = "records.json"
const EventsFile = "events.jsonl"

type FilesystemRepository struct {
	root string
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{root: root}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .baseliner directory and
// prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, BaselinerDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Only direct children of .baseliner are valid metadata files.
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, BaselinerDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .baseliner directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, BaselinerDir))
	return err == nil
}

func (r *FilesystemRepository) SaveConfig(cfg *archive.Config) error {
	path, err := r.ResolvePath(ConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadConfig reads config.yaml, falling back to the defaults when the file
// does not exist yet.
func (r *FilesystemRepository) LoadConfig() (*archive.Config, error) {
	path, err := r.ResolvePath(ConfigFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := archive.DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg archive.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg = cfg.Normalize()
	return &cfg, nil
}

func (r *FilesystemRepository) SaveCatalog(templates []archive.DocumentTemplate) error {
	path, err := r.ResolvePath(CatalogFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(templates)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadCatalog reads catalog.yaml, falling back to the built-in catalog when
// no override exists.
func (r *FilesystemRepository) LoadCatalog() (*archive.Catalog, error) {
	path, err := r.ResolvePath(CatalogFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return archive.DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var templates []archive.DocumentTemplate
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	return archive.NewCatalog(templates)
}

func (r *FilesystemRepository) SaveRecords(records []archive.UploadRecord) error {
	path, err := r.ResolvePath(RecordsFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadRecords() ([]archive.UploadRecord, error) {
	path, err := r.ResolvePath(RecordsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []archive.UploadRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var records []archive.UploadRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal records: %w", err)
	}

	return records, nil
}

// WriteDocument writes an archived document to its canonical path, creating
// parent directories as needed. An existing file at the path is overwritten.
func (r *FilesystemRepository) WriteDocument(path string, data []byte) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// AppendUploadLine appends one line to the plain-text upload log with a
// single write.
func (r *FilesystemRepository) AppendUploadLine(logFile, line string) error {
	path := logFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}

	// #nosec G304 -- log location comes from validated workspace config
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open upload log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("failed to append upload log line: %w", err)
	}

	return nil
}

// ReadUploadLog returns the non-empty lines of the upload log, oldest first.
func (r *FilesystemRepository) ReadUploadLog(logFile string) ([]string, error) {
	path := logFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}

	// #nosec G304 -- log location comes from validated workspace config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read upload log: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *FilesystemRepository) RecordEvent(event domain.Event) error {
	path, err := r.ResolvePath(EventsFile)
	if err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	data = append(data, '\n')

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

func (r *FilesystemRepository) LoadEvents() ([]domain.Event, error) {
	path, err := r.ResolvePath(EventsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Event{}, nil
		}
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	var events []domain.Event
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var e domain.Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, e)
	}

	return events, nil
}
