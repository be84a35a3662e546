package archive

import (
	"fmt"
	"strings"
)

// ArchiveError is implemented by every archiving failure so callers can
// report which upload went wrong.
type ArchiveError interface {
	error
	Filename() string
}

// UnsupportedFormatError reports an upload whose extension is not accepted.
type UnsupportedFormatError struct {
	File    string
	Allowed []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format for %q, allowed: %s", e.File, strings.Join(e.Allowed, ", "))
}

func (e *UnsupportedFormatError) Filename() string { return e.File }

// CorruptArchiveError reports a zip upload that could not be read.
type CorruptArchiveError struct {
	File string
	Err  error
}

func (e *CorruptArchiveError) Error() string {
	return fmt.Sprintf("archive %q is corrupt or unreadable: %v", e.File, e.Err)
}

func (e *CorruptArchiveError) Filename() string { return e.File }

func (e *CorruptArchiveError) Unwrap() error { return e.Err }

// PayloadNotFoundError reports a zip upload missing the expected document.
type PayloadNotFoundError struct {
	File     string
	Expected string
}

func (e *PayloadNotFoundError) Error() string {
	return fmt.Sprintf("archive %q does not contain the expected document %q", e.File, e.Expected)
}

func (e *PayloadNotFoundError) Filename() string { return e.File }

// WriteFailedError reports a document that could not be written to its
// canonical path.
type WriteFailedError struct {
	File string
	Path string
	Err  error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("failed to write %q to %q: %v", e.File, e.Path, e.Err)
}

func (e *WriteFailedError) Filename() string { return e.File }

func (e *WriteFailedError) Unwrap() error { return e.Err }

// LifecycleViolationError reports a re-upload whose maturity does not follow
// from the previously recorded one. The document is stored anyway; the record
// keeps last-write-wins semantics.
type LifecycleViolationError struct {
	File string
	From Maturity
	To   Maturity
}

func (e *LifecycleViolationError) Error() string {
	return fmt.Sprintf("document %q saved, but maturity %q does not follow %q in the review lifecycle", e.File, e.To, e.From)
}

func (e *LifecycleViolationError) Filename() string { return e.File }

// LogAppendError reports a document that was saved but whose audit log line
// could not be appended. The stored file is intact.
type LogAppendError struct {
	File string
	Err  error
}

func (e *LogAppendError) Error() string {
	return fmt.Sprintf("document %q saved, but audit log append failed: %v", e.File, e.Err)
}

func (e *LogAppendError) Filename() string { return e.File }

func (e *LogAppendError) Unwrap() error { return e.Err }
