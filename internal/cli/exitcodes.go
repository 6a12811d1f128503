package cli

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/yaklabco/stylefix/internal/configloader"
	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/runner"
)

// Exit codes for stylefix.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates check mode found at least one issue.
	ExitIssuesFound = 1

	// ExitFileErrors indicates one or more files could not be processed.
	ExitFileErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrIssuesFound is returned by check when issues are found.
	ErrIssuesFound = errors.New("issues found")

	// ErrFileErrors is returned when some files could not be processed.
	ErrFileErrors = errors.New("some files could not be processed")
)

// UsageError marks an error caused by invalid command-line usage.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// ExitCodeFromResult determines the exit code for a finished run. Only
// check mode fails on results; fix output is informational. File errors
// take precedence over issues.
func ExitCodeFromResult(result *runner.Result, mode config.RunMode) int {
	if result == nil || mode != config.ModeCheck {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitFileErrors
	}

	if result.Stats.InitialIssues > 0 {
		return ExitIssuesFound
	}

	return ExitSuccess
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	var validationErr *configloader.ValidationError

	switch {
	case errors.Is(err, ErrIssuesFound):
		return ExitIssuesFound
	case errors.Is(err, ErrFileErrors):
		return ExitFileErrors
	case errors.As(err, &usageErr):
		return ExitInvalidUsage
	case errors.As(err, &validationErr), errors.Is(err, configloader.ErrConfigFile):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	case strings.HasPrefix(err.Error(), "unknown command"):
		// Cobra reports unknown subcommands as plain errors.
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}

// IsSilent reports whether err only carries an exit status and needs no message.
func IsSilent(err error) bool {
	return errors.Is(err, ErrIssuesFound) || errors.Is(err, ErrFileErrors)
}
