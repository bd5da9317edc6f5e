package config

import (
	"flag"
	"os"
	"time"

	"github.com/Jovinull/MyGastronomy/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":3000")
//	-d string   PostgreSQL DSN; empty keeps users in memory
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-i string   token issuer
//	-n int      PBKDF2 iterations
//	-k int      concurrent key derivations
//	-l string   log backend (slog|zap)
//
// os.Args is filtered with flagx.FilterArgs first so the -c and -e flags
// consumed by the other layers do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-i", "-n", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenTTL := fs.Int("t", int(config.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.StringVar(&config.TokenIssuer, "i", config.TokenIssuer, "token issuer")
	fs.IntVar(&config.KDFIterations, "n", config.KDFIterations, "PBKDF2 iterations")
	fs.IntVar(&config.KDFConcurrency, "k", config.KDFConcurrency, "concurrent key derivations")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend (slog|zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenTTL = time.Duration(*tokenTTL) * time.Minute
		}
	})
}
