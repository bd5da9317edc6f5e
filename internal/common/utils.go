package common

import (
	"crypto/rand"
	"fmt"
)

// GenerateRandByteArray returns size bytes from the system CSPRNG.
// A failing entropy source is not recoverable, so it panics.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("entropy source unavailable: %v", err))
	}
	return b
}

// WipeByteArray overwrites b with zeros. Nil-safe.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
