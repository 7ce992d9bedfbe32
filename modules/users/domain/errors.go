package domain

import "errors"

// Domain errors - business rule violations.
// These errors are part of the domain language.
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Identifier errors
	ErrInvalidUserID = errors.New("invalid user ID format")
	ErrNilUserID     = errors.New("user ID must not be nil")

	// Login errors
	ErrLoginInvalid = errors.New("login must be non-empty and alphanumeric")
)
