// Package credentials is the credential verification pipeline: registration
// stores a salted PBKDF2 derivative of the password, and the verification
// strategy recomputes it on login and compares in constant time.
//
// Outcomes are returned as sentinel errors from package common
// (ErrUserNotFound, ErrPasswordMismatch, ErrDerivationFailure, ErrConflict,
// ErrDirectoryUnavailable) and should be matched with errors.Is.
package credentials

import (
	"context"

	"github.com/Jovinull/MyGastronomy/internal/server/models"
)

// Directory is the part of the user directory the pipeline needs.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// Deriver computes a derived key from a password and a salt.
// *cryptox.Limiter satisfies it.
type Deriver interface {
	Derive(ctx context.Context, password, salt []byte) ([]byte, error)
}
