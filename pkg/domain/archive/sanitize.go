package archive

import "strings"

// Sanitizers normalise user-entered names into filesystem-safe tokens. All
// of them are deterministic and idempotent: applying one twice yields the
// same result as applying it once.

// SanitizeVersion makes a version string safe for use in a filename.
// Spaces become underscores, slashes become dashes, backslashes and colons
// are removed.
func SanitizeVersion(version string) string {
	s := strings.ReplaceAll(version, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "")
	s = strings.ReplaceAll(s, ":", "")
	return s
}

// SanitizeRelease makes a release name safe for use as a directory name.
// It applies the same rules as SanitizeVersion.
func SanitizeRelease(release string) string {
	return SanitizeVersion(release)
}

// SanitizeBaseFilename makes a base filename safe. In addition to the space
// and slash handling, dots are removed so the base cannot carry an extension.
func SanitizeBaseFilename(base string) string {
	s := strings.ReplaceAll(base, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, ".", "")
	return s
}

// SanitizeDepartmentDir turns a department display name into its directory
// name. An " & " separator becomes "_and_", remaining spaces are removed.
func SanitizeDepartmentDir(name string) string {
	s := strings.ReplaceAll(name, " & ", "_and_")
	s = strings.ReplaceAll(s, " ", "")
	return s
}
