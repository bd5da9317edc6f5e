package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/Jovinull/MyGastronomy/internal/client/api"
	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	signUpOut *api.Session
	signUpErr error
	loginOut  *api.Session
	loginErr  error
	meOut     *api.Account
	meErr     error

	gotEmail    string
	gotPassword []byte
	gotToken    string
}

func (f *fakeAPI) SignUp(_ context.Context, email string, password []byte) (*api.Session, error) {
	f.gotEmail, f.gotPassword = email, append([]byte(nil), password...)
	return f.signUpOut, f.signUpErr
}

func (f *fakeAPI) Login(_ context.Context, email string, password []byte) (*api.Session, error) {
	f.gotEmail, f.gotPassword = email, append([]byte(nil), password...)
	return f.loginOut, f.loginErr
}

func (f *fakeAPI) Me(_ context.Context, token string) (*api.Account, error) {
	f.gotToken = token
	return f.meOut, f.meErr
}

// stubInputs replaces the prompts and returns the password slice handed to
// the app so tests can check it was wiped.
func stubInputs(t *testing.T, email, password string) []byte {
	t.Helper()
	pw := []byte(password)
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return email, nil }
	getPassword = func(io.Writer) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { getSimpleText, getPassword = origST, origGP })
	return pw
}

func newTestApp(f *fakeAPI) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{api: f, reader: bufio.NewReader(strings.NewReader("")), out: &out}, &out
}

func session(email string) *api.Session {
	return &api.Session{Token: "tok", Account: &api.Account{ID: "u-1", Email: email}}
}

func TestRegister_Success(t *testing.T) {
	pw := stubInputs(t, "chef@example.com", "hunter2")
	f := &fakeAPI{signUpOut: session("chef@example.com")}
	app, out := newTestApp(f)

	require.NoError(t, app.Register(context.Background()))

	assert.Equal(t, "chef@example.com", f.gotEmail)
	assert.Equal(t, []byte("hunter2"), f.gotPassword)
	assert.Equal(t, make([]byte, 7), pw, "password wiped")
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "chef@example.com", app.status())
	assert.Contains(t, out.String(), "Success!")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: x", common.ErrConflict), "User already exists"},
		{fmt.Errorf("%w: x", api.ErrUnavailable), "Server unavailable"},
		{errors.New("weird"), "Registration failed: weird"},
	}
	for _, tt := range tests {
		stubInputs(t, "chef@example.com", "hunter2")
		app, out := newTestApp(&fakeAPI{signUpErr: tt.err})

		assert.ErrorIs(t, app.Register(context.Background()), tt.err)
		assert.False(t, app.isLoggedIn())
		assert.Contains(t, out.String(), tt.want)
	}
}

func TestLogin(t *testing.T) {
	stubInputs(t, "chef@example.com", "hunter2")
	app, out := newTestApp(&fakeAPI{loginOut: session("chef@example.com")})
	require.NoError(t, app.Login(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Login successful")

	stubInputs(t, "chef@example.com", "wrong")
	app, out = newTestApp(&fakeAPI{loginErr: fmt.Errorf("%w: x", common.ErrInvalidCredentials)})
	assert.Error(t, app.Login(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Credentials are not correct")
}

func TestLogin_InputError(t *testing.T) {
	origST := getSimpleText
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return "", io.EOF }
	t.Cleanup(func() { getSimpleText = origST })

	f := &fakeAPI{}
	app, _ := newTestApp(f)
	assert.ErrorIs(t, app.Login(context.Background()), io.EOF)
	assert.Empty(t, f.gotEmail)
}

func TestWhoAmI(t *testing.T) {
	f := &fakeAPI{meOut: &api.Account{ID: "u-1", Email: "chef@example.com"}}
	app, out := newTestApp(f)

	assert.ErrorIs(t, app.WhoAmI(context.Background()), api.ErrUnauthorized)
	assert.Contains(t, out.String(), "Not logged in")

	app.session = session("chef@example.com")
	require.NoError(t, app.WhoAmI(context.Background()))
	assert.Equal(t, "tok", f.gotToken)
	assert.Contains(t, out.String(), "chef@example.com (id u-1)")

	f.meErr = fmt.Errorf("%w: expired", api.ErrUnauthorized)
	assert.Error(t, app.WhoAmI(context.Background()))
	assert.False(t, app.isLoggedIn())
}

func TestLogout(t *testing.T) {
	app, _ := newTestApp(&fakeAPI{})
	app.session = session("chef@example.com")

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "guest", app.status())
}
