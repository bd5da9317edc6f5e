// Package http exposes the user service over a JSON HTTP API: a welcome
// route, sign-up, login and a token check, all wrapped in a common envelope.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/Jovinull/MyGastronomy/internal/logging"
	"github.com/Jovinull/MyGastronomy/internal/server/models"
	"github.com/Jovinull/MyGastronomy/internal/server/services"
)

// UserService is satisfied by *services.UserService.
type UserService interface {
	SignUp(ctx context.Context, email string, password []byte) (*services.Session, error)
	Login(ctx context.Context, email string, password []byte) (*services.Session, error)
}

type AuthHandler struct {
	users  UserService
	logger logging.Logger
}

func NewAuthHandler(us UserService, l logging.Logger) *AuthHandler {
	return &AuthHandler{users: us, logger: l.With("module", "auth_handler")}
}

// SignUpResponse is the success body of POST /auth/signup.
type SignUpResponse struct {
	Text   string          `json:"text"`
	Token  string          `json:"token"`
	User   *models.Account `json:"user"`
	Logged bool            `json:"logged"`
}

// LoginResponse is the success body of POST /auth/login.
type LoginResponse struct {
	Text  string          `json:"text"`
	User  *models.Account `json:"user"`
	Token string          `json:"token"`
}

// MeResponse is the success body of GET /auth/me.
type MeResponse struct {
	User *models.Account `json:"user"`
}

func (h *AuthHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	ok(w, "Welcome to MyGastronomy")
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	req, invalid := decodeCredentials(w, r)
	if invalid != nil {
		writeEnvelope(w, http.StatusBadRequest, invalid)
		return
	}

	ctx := r.Context()
	sess, err := h.users.SignUp(ctx, req.Email, []byte(req.Password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrConflict):
			h.logger.Warn(ctx, "sign-up for existing user", "email", req.Email)
			fail(w, http.StatusConflict, "User already exists")
		case errors.Is(err, common.ErrDerivationFailure):
			h.logger.Error(ctx, "sign-up derivation failed", "error", err)
			fail(w, http.StatusInternalServerError, "Error on crypto password!")
		case unavailable(err):
			h.logger.Error(ctx, "sign-up unavailable", "error", err)
			fail(w, http.StatusServiceUnavailable, "Service unavailable")
		default:
			h.logger.Error(ctx, "sign-up failed", "error", err)
			fail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.logger.Info(ctx, "registered", "email", sess.Account.Email, "id", sess.Account.ID)
	ok(w, SignUpResponse{
		Text:   "User registered correctly!",
		Token:  sess.Token,
		User:   sess.Account,
		Logged: true,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, invalid := decodeCredentials(w, r)
	if invalid != nil {
		writeEnvelope(w, http.StatusBadRequest, invalid)
		return
	}

	ctx := r.Context()
	sess, err := h.users.Login(ctx, req.Email, []byte(req.Password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			h.logger.Info(ctx, "login rejected", "email", req.Email)
			fail(w, http.StatusBadRequest, "Credentials are not correct")
		case unavailable(err):
			h.logger.Error(ctx, "login unavailable", "error", err)
			fail(w, http.StatusServiceUnavailable, "Service unavailable")
		default:
			h.logger.Error(ctx, "login failed", "error", err)
			fail(w, http.StatusInternalServerError, "Error during authentication")
		}
		return
	}

	ok(w, LoginResponse{
		Text:  "User logged in correctly",
		User:  sess.Account,
		Token: sess.Token,
	})
}

// Me echoes the account carried by the bearer token. It must run behind
// RequireToken.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	account, found := AccountFromContext(r.Context())
	if !found {
		fail(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	ok(w, MeResponse{User: account})
}

func unavailable(err error) bool {
	return errors.Is(err, common.ErrDirectoryUnavailable) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
