package schnorr

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashFunc is a one-shot 256-bit digest.
type HashFunc func([]byte) [32]byte

// Digests usable with WithHash. SHA256 is the default.
var (
	SHA256     HashFunc = sha256.Sum256
	SHA3       HashFunc = sha3.Sum256
	BLAKE2b256 HashFunc = blake2b.Sum256
)

// challenge computes e = H(enc(R) || m) reduced modulo the group order.
// The point encoding is fixed-length, so no separator is needed between the
// two parts.
func challenge(curve Curve, hash HashFunc, R Point, m []byte) Scalar {
	enc := R.Encode()
	preimage := make([]byte, 0, len(enc)+len(m))
	preimage = append(preimage, enc...)
	preimage = append(preimage, m...)

	digest := hash(preimage)
	return curve.ScalarFromDigest(digest[:])
}
