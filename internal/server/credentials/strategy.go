package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/Jovinull/MyGastronomy/internal/cryptox"
	"github.com/Jovinull/MyGastronomy/internal/server/models"
)

// Strategy authenticates an email/password pair against the directory.
type Strategy struct {
	directory Directory
	deriver   Deriver
}

func NewStrategy(directory Directory, deriver Deriver) *Strategy {
	return &Strategy{directory: directory, deriver: deriver}
}

// Verify looks the user up, re-derives the key with the stored salt and
// compares it with the stored key. On success it returns the sanitized
// account.
//
// An unknown email returns before any derivation, so it answers faster than
// a wrong password.
func (s *Strategy) Verify(ctx context.Context, email string, password []byte) (*models.Account, error) {
	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrDirectoryUnavailable, err)
	}

	if !user.HasCredentials() {
		return nil, fmt.Errorf("%w: %w", common.ErrDerivationFailure, common.ErrorIncompleteRecord)
	}

	candidate, err := s.deriver.Derive(ctx, password, user.Salt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("verify: %w", ctxErr)
		}
		if errors.Is(err, common.ErrDerivationFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", common.ErrDerivationFailure, err)
	}
	defer common.WipeByteArray(candidate)

	if !cryptox.Equal(candidate, user.DerivedKey) {
		return nil, common.ErrPasswordMismatch
	}

	return user.Sanitize(), nil
}
