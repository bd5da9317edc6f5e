package cryptox

import "github.com/Jovinull/MyGastronomy/internal/common"

// SaltLength is the per-account salt size in bytes.
const SaltLength = 16

// GenerateSalt returns SaltLength bytes from crypto/rand. Collisions at 128
// bits are not checked. Panics if the entropy source is unavailable.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltLength)
}
