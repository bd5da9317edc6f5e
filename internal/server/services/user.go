// Package services contains server-side business logic. This file implements
// UserService, which turns a registration or a verified login into a signed
// bearer token for the sanitized account.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/Jovinull/MyGastronomy/internal/server/models"
)

// Session is what a client gets back after signing up or logging in.
type Session struct {
	Token   string
	Account *models.Account
}

// Registrar is satisfied by *credentials.Registrar.
type Registrar interface {
	Register(ctx context.Context, email string, password []byte) (string, error)
}

// Verifier is satisfied by *credentials.Strategy.
type Verifier interface {
	Verify(ctx context.Context, email string, password []byte) (*models.Account, error)
}

// TokenSigner is satisfied by *auth.Signer.
type TokenSigner interface {
	Sign(account *models.Account) (string, error)
}

// UserService provides authentication-related operations:
// - SignUp: create users and sign them in
// - Login: verify credentials and mint a token
type UserService struct {
	registrar Registrar
	verifier  Verifier
	signer    TokenSigner
}

// NewUserService wires the credential pipeline to a token signer.
func NewUserService(r Registrar, v Verifier, s TokenSigner) *UserService {
	return &UserService{registrar: r, verifier: v, signer: s}
}

// SignUp registers email/password and returns a session for the new account.
// The password is wiped before returning.
func (s *UserService) SignUp(ctx context.Context, email string, password []byte) (*Session, error) {
	defer common.WipeByteArray(password)

	id, err := s.registrar.Register(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.issue(&models.Account{ID: id, Email: email})
}

// Login checks email/password and returns a session. Unknown email and wrong
// password both come back as ErrInvalidCredentials; the specific cause stays
// in the error chain. The password is wiped before returning.
func (s *UserService) Login(ctx context.Context, email string, password []byte) (*Session, error) {
	defer common.WipeByteArray(password)

	account, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) || errors.Is(err, common.ErrPasswordMismatch) {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidCredentials, err)
		}
		return nil, err
	}

	return s.issue(account)
}

func (s *UserService) issue(account *models.Account) (*Session, error) {
	token, err := s.signer.Sign(account)
	if err != nil {
		return nil, fmt.Errorf("%w: signing token: %w", common.ErrorInternal, err)
	}
	return &Session{Token: token, Account: account}, nil
}
