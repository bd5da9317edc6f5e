// Package auth signs and parses the bearer tokens issued after a successful
// registration or login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Jovinull/MyGastronomy/internal/common"
	"github.com/Jovinull/MyGastronomy/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are built from a sanitized account only: subject is the account id.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Signer issues HS256 tokens.
type Signer struct {
	secret   []byte
	issuer   string
	validity time.Duration
	now      func() time.Time
}

// NewSigner returns a Signer. The secret must come from configuration and
// may not be empty.
func NewSigner(secretKey []byte, issuer string, validity time.Duration) (*Signer, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("token signer: empty secret key")
	}
	if validity <= 0 {
		return nil, fmt.Errorf("token signer: validity must be positive, got %v", validity)
	}
	return &Signer{secret: secretKey, issuer: issuer, validity: validity, now: time.Now}, nil
}

// Sign returns a signed token for account.
func (s *Signer) Sign(account *models.Account) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		Email: account.Email,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Parse validates tokenString (signature, HS256 method, expiry, issuer) and
// returns its claims.
func (s *Signer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
