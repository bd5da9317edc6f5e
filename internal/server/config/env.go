package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Jovinull/MyGastronomy/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envServerAddress  = "SERVER_ADDRESS"
	envDatabaseDSN    = "DATABASE_DSN"
	envSecretKey      = "SECRET_KEY"
	envTokenTTL       = "TOKEN_TTL"
	envTokenIssuer    = "TOKEN_ISSUER"
	envKDFIterations  = "KDF_ITERATIONS"
	envKDFConcurrency = "KDF_CONCURRENCY"
	envLogBackend     = "LOG_BACKEND"
	envAllowedOrigins = "ALLOWED_ORIGINS"
)

// parseEnv loads the .env file (the -e/-env-file flag wins over
// config.EnvFile) and then overlays process environment variables.
// Variables already set in the process are not replaced by the file.
// A missing .env file is ignored; a malformed one or an unparsable value
// panics.
func parseEnv(config *Config) {
	envFile := flagx.EnvFileFlags()
	if envFile == "" {
		envFile = config.EnvFile
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		config.EnvFile = envFile
	}

	if v, ok := os.LookupEnv(envServerAddress); ok {
		config.HTTPAddr = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envSecretKey); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(envTokenTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.TokenTTL = d
	}
	if v, ok := os.LookupEnv(envTokenIssuer); ok {
		config.TokenIssuer = v
	}
	if v, ok := os.LookupEnv(envKDFIterations); ok {
		config.KDFIterations = mustAtoi(v)
	}
	if v, ok := os.LookupEnv(envKDFConcurrency); ok {
		config.KDFConcurrency = mustAtoi(v)
	}
	if v, ok := os.LookupEnv(envLogBackend); ok {
		config.LogBackend = v
	}
	if v, ok := os.LookupEnv(envAllowedOrigins); ok {
		config.AllowedOrigins = splitList(v)
	}
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return n
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
