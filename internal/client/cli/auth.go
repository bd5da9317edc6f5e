package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jovinull/MyGastronomy/internal/client/api"
	"github.com/Jovinull/MyGastronomy/internal/common"
)

// Indirections for tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register creates an account and keeps the returned session.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.api.SignUp(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrConflict):
			fmt.Fprintln(a.out, "User already exists")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Fprintln(a.out, "Server unavailable")
		default:
			fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		}
		return err
	}

	a.session = s
	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login authenticates and keeps the returned session.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.api.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Fprintln(a.out, "Credentials are not correct")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Fprintln(a.out, "Server unavailable")
		default:
			fmt.Fprintf(a.out, "Login failed: %s\n", err)
		}
		return err
	}

	a.session = s
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// WhoAmI asks the server which account the current token belongs to.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return api.ErrUnauthorized
	}

	acc, err := a.api.Me(ctx, a.session.Token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.session = nil
			fmt.Fprintln(a.out, "Session expired, please log in again")
		} else {
			fmt.Fprintf(a.out, "Request failed: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "%s (id %s)\n", acc.Email, acc.ID)
	return nil
}

// Logout forgets the session token.
func (a *App) Logout(_ context.Context) error {
	a.session = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
