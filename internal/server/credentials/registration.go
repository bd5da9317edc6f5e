package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/Jovinull/MyGastronomy/internal/cryptox"
	"github.com/Jovinull/MyGastronomy/internal/server/models"
)

// Registrar creates new accounts.
type Registrar struct {
	directory Directory
	deriver   Deriver
}

func NewRegistrar(directory Directory, deriver Deriver) *Registrar {
	return &Registrar{directory: directory, deriver: deriver}
}

// Register stores a new user with a fresh salt and the derived key of
// password, and returns the id the directory assigned.
//
// The lookup up front saves a derivation for known emails; the directory's
// own uniqueness check on insert is what actually rules out duplicates.
func (r *Registrar) Register(ctx context.Context, email string, password []byte) (string, error) {
	_, err := r.directory.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return "", common.ErrConflict
	case !errors.Is(err, common.ErrorNotFound):
		return "", fmt.Errorf("%w: %w", common.ErrDirectoryUnavailable, err)
	}

	salt := cryptox.GenerateSalt()

	key, err := r.deriver.Derive(ctx, password, salt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("register: %w", ctxErr)
		}
		if errors.Is(err, common.ErrDerivationFailure) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", common.ErrDerivationFailure, err)
	}

	created, err := r.directory.Create(ctx, &models.User{Email: email, DerivedKey: key, Salt: salt})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrConflict
		}
		return "", fmt.Errorf("%w: %w", common.ErrDirectoryUnavailable, err)
	}

	return created.ID, nil
}
