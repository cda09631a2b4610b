package models

import "errors"

// ErrTaskNotFound indicates a lookup by ID matched no row.
// Mutations never return it; they treat an unknown ID as a no-op.
var ErrTaskNotFound = errors.New("task not found")
