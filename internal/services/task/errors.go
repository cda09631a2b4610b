package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrEmptyDueDate    = errors.New("due date cannot be empty")
	ErrInvalidDueDate  = errors.New("due date must be in YYYY-MM-DD format")
	ErrInvalidPriority = errors.New("priority must be one of: Low, Medium, High")
	ErrInvalidStatus   = errors.New("status must be one of: Pending, Completed")
	ErrInvalidTaskID   = errors.New("invalid task ID")

	// Export errors
	ErrEmptyExportPath = errors.New("export path cannot be empty")
)

// IsValidationError reports whether err was caused by bad input rather than storage
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrEmptyTitle, ErrTitleTooLong, ErrEmptyDueDate, ErrInvalidDueDate,
		ErrInvalidPriority, ErrInvalidStatus, ErrInvalidTaskID, ErrEmptyExportPath,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
