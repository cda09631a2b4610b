package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/taskr/internal/models"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, file errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, non-numeric task IDs.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	// Only commands that read a single task report it; mutations on
	// unknown IDs succeed silently.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, malformed due dates, unknown priorities or statuses.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// The message has already been reported to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	if err == nil {
		err = fmt.Errorf("exit status %d", code)
	}
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ClassifyError(err)
}

// ClassifyError maps service and store errors to exit codes
func ClassifyError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case taskservice.IsValidationError(err):
		return ExitValidation
	case errors.Is(err, models.ErrTaskNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, taskservice.ErrEmptyTitle), errors.Is(err, taskservice.ErrTitleTooLong):
		return "INVALID_TITLE"
	case errors.Is(err, taskservice.ErrEmptyDueDate), errors.Is(err, taskservice.ErrInvalidDueDate):
		return "INVALID_DUE_DATE"
	case errors.Is(err, taskservice.ErrInvalidPriority):
		return "INVALID_PRIORITY"
	case errors.Is(err, taskservice.ErrInvalidStatus):
		return "INVALID_STATUS"
	case errors.Is(err, taskservice.ErrInvalidTaskID):
		return "INVALID_TASK_ID"
	case errors.Is(err, taskservice.ErrEmptyExportPath):
		return "INVALID_PATH"
	case errors.Is(err, models.ErrTaskNotFound):
		return "TASK_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}
