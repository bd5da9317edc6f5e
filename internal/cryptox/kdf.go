// Package cryptox holds the password-derivation primitives used by the
// credential pipeline: the PBKDF2 key derivation function, per-account salt
// generation and a constant-time comparator for derived keys.
package cryptox

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations must stay at 310000 so keys stored by earlier
	// deployments keep verifying.
	DefaultIterations = 310_000
	// DefaultKeyLength is the derived key size in bytes.
	DefaultKeyLength = 16
)

// KDF turns a password and a salt into a fixed-length derived key.
type KDF interface {
	Derive(password, salt []byte) ([]byte, error)
}

// PBKDF2 implements KDF with PBKDF2-HMAC-SHA256.
type PBKDF2 struct {
	iterations int
	keyLength  int
	hash       func() hash.Hash
}

// Option configures a PBKDF2 deriver.
type Option func(*PBKDF2)

// WithIterations overrides the iteration count.
func WithIterations(n int) Option {
	return func(p *PBKDF2) { p.iterations = n }
}

// WithKeyLength overrides the derived key length in bytes.
func WithKeyLength(n int) Option {
	return func(p *PBKDF2) { p.keyLength = n }
}

// NewPBKDF2 returns a deriver with DefaultIterations and DefaultKeyLength
// unless overridden by opts. Invalid parameters are not rejected here; Derive
// reports them as ErrDerivationFailure.
func NewPBKDF2(opts ...Option) *PBKDF2 {
	p := &PBKDF2{
		iterations: DefaultIterations,
		keyLength:  DefaultKeyLength,
		hash:       sha256.New,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Iterations returns the configured iteration count.
func (p *PBKDF2) Iterations() int { return p.iterations }

// KeyLength returns the configured derived key length.
func (p *PBKDF2) KeyLength() int { return p.keyLength }

// Derive computes PBKDF2(password, salt). It never returns an empty or short
// key together with a nil error.
func (p *PBKDF2) Derive(password, salt []byte) ([]byte, error) {
	switch {
	case p.iterations < 1:
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", common.ErrDerivationFailure, p.iterations)
	case p.keyLength < 1:
		return nil, fmt.Errorf("%w: key length must be positive, got %d", common.ErrDerivationFailure, p.keyLength)
	case len(salt) == 0:
		return nil, fmt.Errorf("%w: empty salt", common.ErrDerivationFailure)
	}

	key := pbkdf2.Key(password, salt, p.iterations, p.keyLength, p.hash)
	if len(key) != p.keyLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", common.ErrDerivationFailure, len(key), p.keyLength)
	}
	return key, nil
}
