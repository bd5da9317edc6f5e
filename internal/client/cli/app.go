package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/Jovinull/MyGastronomy/internal/client/api"
	"github.com/Jovinull/MyGastronomy/internal/client/config"
)

// AuthAPI is the part of api.Client the CLI uses.
type AuthAPI interface {
	SignUp(ctx context.Context, email string, password []byte) (*api.Session, error)
	Login(ctx context.Context, email string, password []byte) (*api.Session, error)
	Me(ctx context.Context, token string) (*api.Account, error)
}

type App struct {
	config  *config.Config
	api     AuthAPI
	reader  *bufio.Reader
	out     io.Writer
	session *api.Session
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil || a.session.Account == nil {
		return "guest"
	}
	return a.session.Account.Email
}

// Run starts the REPL on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("MyGastronomy CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}
