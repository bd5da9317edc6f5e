package config

import (
	"encoding/json"
	"os"

	"github.com/Jovinull/MyGastronomy/internal/flagx"
	"github.com/Jovinull/MyGastronomy/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept "60m"
// or integer nanoseconds. Only keys present in the file override the target.
type JsonConfig struct {
	HTTPAddr       *string         `json:"http_addr"`
	DatabaseDSN    *string         `json:"database_dsn"`
	SecretKey      *string         `json:"secret_key"`
	TokenTTL       *timex.Duration `json:"token_ttl"`
	TokenIssuer    *string         `json:"token_issuer"`
	KDFIterations  *int            `json:"kdf_iterations"`
	KDFConcurrency *int            `json:"kdf_concurrency"`
	LogBackend     *string         `json:"log_backend"`
	AllowedOrigins []string        `json:"allowed_origins"`
	EnvFile        *string         `json:"env_file"`
}

// parseJson overlays the file named by -c/-config onto config. Nothing
// happens when neither flag is given. An unreadable file or invalid JSON
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.HTTPAddr, c.HTTPAddr)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.TokenIssuer, c.TokenIssuer)
	setIf(&config.KDFIterations, c.KDFIterations)
	setIf(&config.KDFConcurrency, c.KDFConcurrency)
	setIf(&config.LogBackend, c.LogBackend)
	setIf(&config.EnvFile, c.EnvFile)
	if c.TokenTTL != nil {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
