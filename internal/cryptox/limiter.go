package cryptox

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Limiter runs a KDF with at most n derivations in flight. Callers beyond the
// limit wait for a slot or for their context to end.
type Limiter struct {
	kdf KDF
	sem *semaphore.Weighted
}

// NewLimiter wraps kdf. n < 1 is treated as 1.
func NewLimiter(kdf KDF, n int64) *Limiter {
	if n < 1 {
		n = 1
	}
	return &Limiter{kdf: kdf, sem: semaphore.NewWeighted(n)}
}

// Derive waits for a slot and then runs the wrapped KDF.
func (l *Limiter) Derive(ctx context.Context, password, salt []byte) ([]byte, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for kdf slot: %w", err)
	}
	defer l.sem.Release(1)

	return l.kdf.Derive(password, salt)
}
