// Package users holds the user directory: the store of registered accounts
// keyed by email.
package users

import (
	"context"

	"github.com/Jovinull/MyGastronomy/internal/server/models"
)

// Repository is the user directory.
//
// FindByEmail returns common.ErrorNotFound when no account has that email.
// Create assigns ID and CreatedAt and returns common.ErrorAlreadyExists when
// the email is taken; it never overwrites an existing record.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
