// Package common defines shared constants and sentinel errors used across
// StoryKeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is returned when the embedded database or the
	// session file cannot be opened or written.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
)
