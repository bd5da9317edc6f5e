// Package config handles configuration for the server component: defaults,
// then a JSON overlay, then environment variables (optionally loaded from a
// .env file), then command-line flags.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/Jovinull/MyGastronomy/internal/cryptox"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - HTTPAddr: bind address for the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory directory.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - TokenTTL / TokenIssuer: lifetime and "iss" claim of issued tokens.
//   - KDFIterations / KDFConcurrency: PBKDF2 work factor and the number of
//     derivations allowed to run at once.
//   - LogBackend: "slog" or "zap".
//   - AllowedOrigins: CORS origins.
//   - EnvFile: path of the .env file read before environment overrides.
type Config struct {
	HTTPAddr       string
	DatabaseDSN    string
	SecretKey      string
	TokenTTL       time.Duration
	TokenIssuer    string
	KDFIterations  int
	KDFConcurrency int
	LogBackend     string
	AllowedOrigins []string
	EnvFile        string
}

// LoadDefaults populates Config with development defaults. SecretKey is left
// empty on purpose and must come from one of the other layers.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":3000"
	c.DatabaseDSN = ""
	c.TokenTTL = 60 * time.Minute
	c.TokenIssuer = "mygastronomy"
	c.KDFIterations = cryptox.DefaultIterations
	c.KDFConcurrency = runtime.NumCPU()
	c.LogBackend = "slog"
	c.AllowedOrigins = []string{"*"}
	c.EnvFile = ".env"
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key is required (-s, SECRET_KEY or secret_key)"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL))
	}
	if c.KDFIterations < 1 {
		errs = append(errs, fmt.Errorf("kdf iterations must be at least 1, got %d", c.KDFIterations))
	}
	if c.KDFConcurrency < 1 {
		errs = append(errs, fmt.Errorf("kdf concurrency must be at least 1, got %d", c.KDFConcurrency))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
