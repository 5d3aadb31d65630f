package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Authorization errors
	ErrMsgUnauthenticated = "missing or invalid credential"
	ErrMsgForbidden       = "admin access required"

	// Sync errors
	ErrMsgSyncFailed = "sync failed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Authorization errors
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)
	ErrForbidden       = errors.New(ErrMsgForbidden)

	// Sync errors
	ErrSyncFailed = errors.New(ErrMsgSyncFailed)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
