package cli

import (
	"errors"
	"fmt"

	"github.com/baselinehq/baseliner/pkg/domain/archive"
	"github.com/baselinehq/baseliner/pkg/domain/assessment"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var formatErr *archive.UnsupportedFormatError
	if errors.As(err, &formatErr) {
		return NewCLIError(
			formatErr.Error(),
			fmt.Sprintf("Allowed extensions: %v", formatErr.Allowed),
			err,
		)
	}

	var payloadErr *archive.PayloadNotFoundError
	if errors.As(err, &payloadErr) {
		return NewCLIError(
			payloadErr.Error(),
			fmt.Sprintf("The archive must contain a file named '%s' (case-insensitive)", payloadErr.Expected),
			err,
		)
	}

	var corruptErr *archive.CorruptArchiveError
	if errors.As(err, &corruptErr) {
		return NewCLIError(
			corruptErr.Error(),
			"Re-export the ZIP archive and try again",
			err,
		)
	}

	var logErr *archive.LogAppendError
	if errors.As(err, &logErr) {
		return NewCLIError(
			logErr.Error(),
			"The document was saved; check write permissions on the upload log",
			err,
		)
	}

	var constraintErr *assessment.ConstraintError
	if errors.As(err, &constraintErr) {
		return NewCLIError(
			constraintErr.Error(),
			fmt.Sprintf("Run 'baseliner evaluate --help' for the accepted values of --%s", constraintErr.Field),
			err,
		)
	}

	return err
}
