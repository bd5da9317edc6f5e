// Package server wires configuration, the user directory, the credential
// pipeline and the HTTP API into a runnable application with graceful
// shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Jovinull/MyGastronomy/internal/cryptox"
	"github.com/Jovinull/MyGastronomy/internal/logging"
	"github.com/Jovinull/MyGastronomy/internal/server/auth"
	"github.com/Jovinull/MyGastronomy/internal/server/config"
	"github.com/Jovinull/MyGastronomy/internal/server/credentials"
	httpapi "github.com/Jovinull/MyGastronomy/internal/server/http"
	"github.com/Jovinull/MyGastronomy/internal/server/repositories/repomanager"
	"github.com/Jovinull/MyGastronomy/internal/server/repositories/users"
	"github.com/Jovinull/MyGastronomy/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

// Seams for tests.
var (
	logOutput     io.Writer = os.Stdout
	openPostgres            = repomanager.OpenPostgres
	newRepoManager           = repomanager.NewPostgresRepositoryManager
)

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger, err := logging.New(c.LogBackend, logOutput)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	logger = logger.With("service", "mygastronomy")

	app := &App{config: c, logger: logger}

	directory, err := app.openDirectory(ctx)
	if err != nil {
		return nil, err
	}

	kdf := cryptox.NewPBKDF2(cryptox.WithIterations(c.KDFIterations))
	deriver := cryptox.NewLimiter(kdf, int64(c.KDFConcurrency))

	signer, err := auth.NewSigner([]byte(c.SecretKey), c.TokenIssuer, c.TokenTTL)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("token signer init error: %w", err)
	}

	us := services.NewUserService(
		credentials.NewRegistrar(directory, deriver),
		credentials.NewStrategy(directory, deriver),
		signer,
	)

	app.handler = httpapi.NewRouter(httpapi.NewAuthHandler(us, logger), signer, logger, c.AllowedOrigins)

	return app, nil
}

// openDirectory returns the Postgres directory when a DSN is configured,
// running migrations first, and the in-memory one otherwise.
func (app *App) openDirectory(ctx context.Context) (credentials.Directory, error) {
	if app.config.DatabaseDSN == "" {
		app.logger.Warn(ctx, "no database DSN configured, users are kept in memory")
		return users.NewInMemoryRepository(), nil
	}

	db, err := openPostgres(ctx, app.config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	app.db = db
	return rm.Users(db), nil
}

func (app *App) close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close error", "error", err)
		}
		app.db = nil
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.HTTPAddr, app.handler, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close()
	app.logger.Info(context.Background(), "App stopped")
}
