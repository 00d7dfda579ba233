package board

import "errors"

// Board mutation errors.
var (
	// Validation errors
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrNameTooLong = errors.New("name cannot exceed 50 characters")

	// Business logic errors
	ErrColumnNotFound = errors.New("column not found")
	ErrColumnNotEmpty = errors.New("cannot delete a column that still has items")
)
