package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Variables(t *testing.T) {
	clearEnv(t)
	setArgs(t)
	chdir(t, t.TempDir())

	t.Setenv(envServerAddress, ":4000")
	t.Setenv(envDatabaseDSN, "postgres://env")
	t.Setenv(envSecretKey, "env-secret")
	t.Setenv(envTokenTTL, "2h")
	t.Setenv(envTokenIssuer, "env-iss")
	t.Setenv(envKDFIterations, "20000")
	t.Setenv(envKDFConcurrency, " 8 ")
	t.Setenv(envLogBackend, "zap")
	t.Setenv(envAllowedOrigins, "https://a.example, https://b.example,")

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, ":4000", cfg.HTTPAddr)
	assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "env-iss", cfg.TokenIssuer)
	assert.Equal(t, 20000, cfg.KDFIterations)
	assert.Equal(t, 8, cfg.KDFConcurrency)
	assert.Equal(t, "zap", cfg.LogBackend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("SECRET_KEY=dotenv-secret\nDATABASE_DSN=postgres://dotenv\n"), 0o600))

	t.Run("file values applied", func(t *testing.T) {
		clearEnv(t)
		setArgs(t, "-e", envPath)

		cfg := defaults()
		parseEnv(cfg)

		assert.Equal(t, "dotenv-secret", cfg.SecretKey)
		assert.Equal(t, "postgres://dotenv", cfg.DatabaseDSN)
		assert.Equal(t, envPath, cfg.EnvFile)
	})

	t.Run("process env wins over file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(envSecretKey, "process-secret")
		setArgs(t)

		cfg := defaults()
		cfg.EnvFile = envPath
		parseEnv(cfg)

		assert.Equal(t, "process-secret", cfg.SecretKey)
	})
}

func TestParseEnv_MissingDefaultFileIgnored(t *testing.T) {
	clearEnv(t)
	setArgs(t)
	chdir(t, t.TempDir())

	cfg := defaults()
	require.NotPanics(t, func() { parseEnv(cfg) })
	assert.Equal(t, defaults(), cfg)
}

func TestParseEnv_BadNumberPanics(t *testing.T) {
	clearEnv(t)
	setArgs(t)
	chdir(t, t.TempDir())
	t.Setenv(envKDFIterations, "lots")

	require.Panics(t, func() { parseEnv(defaults()) })
}
