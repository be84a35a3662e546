package archive

import (
	"fmt"
	"path/filepath"
)

// TargetExtension is the extension every archived document ends up with.
const TargetExtension = ".pdf"

// Config holds the archiving policy knobs.
type Config struct {
	BaseDir           string   `yaml:"base_dir"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
	ZipFallback       bool     `yaml:"zip_fallback"`
	ReleaseScopedDirs bool     `yaml:"release_scoped_dirs"`
	MaturitySuffix    bool     `yaml:"maturity_suffix"`
	LogFile           string   `yaml:"log_file"`
	CostThreshold     float64  `yaml:"cost_threshold"`
}

// DefaultConfig returns the archiving defaults.
func DefaultConfig() Config {
	return Config{
		BaseDir:           "output_folder",
		AllowedExtensions: []string{".pdf", ".zip"},
		ZipFallback:       true,
		ReleaseScopedDirs: true,
		MaturitySuffix:    true,
		LogFile:           "uploads.log",
		CostThreshold:     20000,
	}
}

// Normalize fills zero-valued fields with their defaults.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.BaseDir == "" {
		c.BaseDir = def.BaseDir
	}
	if len(c.AllowedExtensions) == 0 {
		c.AllowedExtensions = def.AllowedExtensions
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.CostThreshold <= 0 {
		c.CostThreshold = def.CostThreshold
	}
	return c
}

// CanonicalFilename builds the archived filename for one document:
// department code, sanitized base, sanitized version and, when enabled, the
// lowercase maturity token, joined by underscores.
func (c Config) CanonicalFilename(t DocumentTemplate, version string, maturity Maturity) string {
	name := fmt.Sprintf("%s_%s_%s",
		t.DepartmentCode,
		SanitizeBaseFilename(t.ExpectedBaseFilename),
		SanitizeVersion(version),
	)
	if c.MaturitySuffix {
		name += "_" + maturity.Token()
	}
	return name + TargetExtension
}

// CanonicalDir builds the directory an archived document lives in. The
// release segment is omitted when release scoping is disabled.
func (c Config) CanonicalDir(t DocumentTemplate, release string) string {
	parts := []string{c.BaseDir}
	if c.ReleaseScopedDirs {
		parts = append(parts, SanitizeRelease(release))
	}
	parts = append(parts,
		SanitizeDepartmentDir(t.DepartmentName),
		SanitizeBaseFilename(t.ExpectedBaseFilename),
	)
	return filepath.Join(parts...)
}

// CanonicalPath joins the canonical directory and filename.
func (c Config) CanonicalPath(t DocumentTemplate, release, version string, maturity Maturity) string {
	return filepath.Join(c.CanonicalDir(t, release), c.CanonicalFilename(t, version, maturity))
}
