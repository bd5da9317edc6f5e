package cryptox

import "crypto/subtle"

// Equal reports whether a and b are byte-identical. The running time depends
// only on the longer input's length: inputs of different lengths are padded
// and compared in full before the length check is folded in, so neither the
// position of the first difference nor a length mismatch short-circuits.
func Equal(a, b []byte) bool {
	n := max(len(a), len(b))

	pa := make([]byte, n)
	pb := make([]byte, n)
	copy(pa, a)
	copy(pb, b)

	sameBytes := subtle.ConstantTimeCompare(pa, pb)
	sameLen := subtle.ConstantTimeEq(int32(len(a)), int32(len(b)))

	return sameBytes&sameLen == 1
}
