package models

import "time"

// User is one registered account as stored in the user directory.
// DerivedKey and Salt are always set together.
type User struct {
	ID         string
	Email      string
	DerivedKey []byte
	Salt       []byte
	CreatedAt  time.Time
}

// Account is the sanitized view of a User that may leave the server: it has
// no DerivedKey or Salt, so those can never reach a response or a token.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// HasCredentials reports whether both the derived key and the salt are present.
func (u *User) HasCredentials() bool {
	return len(u.DerivedKey) > 0 && len(u.Salt) > 0
}

// Sanitize returns the Account view of u.
func (u *User) Sanitize() *Account {
	return &Account{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
