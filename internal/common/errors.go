// Package common defines shared constants and sentinel errors used across
// the server, its directories and the client. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound         = errors.New("not found")
	ErrorAlreadyExists    = errors.New("already exists")
	ErrorIncompleteRecord = errors.New("derived key and salt must be stored together")

	// Credential pipeline outcomes.
	ErrUserNotFound         = errors.New("user not found")
	ErrPasswordMismatch     = errors.New("password mismatch")
	ErrDerivationFailure    = errors.New("key derivation failure")
	ErrConflict             = errors.New("user already exists")
	ErrDirectoryUnavailable = errors.New("user directory unavailable")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
