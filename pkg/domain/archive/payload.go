package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"strings"
)

// ResolvePayload turns an uploaded file into the PDF bytes to archive. A
// direct upload in an allowed non-zip format passes through unchanged. A zip
// upload, when the fallback is enabled, is searched for the template's
// expected PDF by case-insensitive basename match; macOS metadata entries
// are ignored.
func ResolvePayload(data []byte, originalFilename string, t DocumentTemplate, cfg Config) ([]byte, error) {
	ext := strings.ToLower(path.Ext(originalFilename))
	if !extensionAllowed(ext, cfg.AllowedExtensions) {
		return nil, &UnsupportedFormatError{File: originalFilename, Allowed: cfg.AllowedExtensions}
	}

	if ext != ".zip" {
		return data, nil
	}

	if !cfg.ZipFallback {
		return nil, &UnsupportedFormatError{File: originalFilename, Allowed: withoutZip(cfg.AllowedExtensions)}
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &CorruptArchiveError{File: originalFilename, Err: err}
	}

	want := strings.ToLower(t.ExpectedPDFName())
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || isMacOSMetadata(entry.Name) {
			continue
		}
		if strings.ToLower(path.Base(entry.Name)) != want {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, &CorruptArchiveError{File: originalFilename, Err: err}
		}
		payload, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &CorruptArchiveError{File: originalFilename, Err: err}
		}
		return payload, nil
	}

	return nil, &PayloadNotFoundError{File: originalFilename, Expected: t.ExpectedPDFName()}
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(ext, a) {
			return true
		}
	}
	return false
}

func withoutZip(allowed []string) []string {
	var out []string
	for _, a := range allowed {
		if !strings.EqualFold(a, ".zip") {
			out = append(out, a)
		}
	}
	return out
}

func isMacOSMetadata(name string) bool {
	if strings.HasPrefix(name, "__MACOSX/") || name == "__MACOSX" {
		return true
	}
	base := path.Base(name)
	return strings.HasPrefix(base, "._") || base == ".DS_Store"
}
