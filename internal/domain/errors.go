package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Authorization errors
	ErrMsgForbidden = "caller is not allowed to modify this user"

	// Task errors
	ErrMsgTaskNotFound         = "task not found"
	ErrMsgTaskAlreadyCompleted = "task already completed"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	ErrForbidden = errors.New(ErrMsgForbidden)

	ErrTaskNotFound         = errors.New(ErrMsgTaskNotFound)
	ErrTaskAlreadyCompleted = errors.New(ErrMsgTaskAlreadyCompleted)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
