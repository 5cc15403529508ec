package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")

	// Authentication errors. ErrInvalidCredentials covers both an
	// unknown username and a wrong password so callers cannot probe
	// which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Score errors. ErrAggregateConflict is transient: the aggregate
	// fold lost an optimistic race and is safe to retry.
	ErrAggregateConflict = errors.New("conflicting aggregate update")

	// Progress errors
	ErrProgressNotFound = errors.New("no progress found for user")
)
