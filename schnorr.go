package schnorr

import (
	"crypto/rand"
	"io"

	"github.com/athanorlabs/go-schnorr/secp256k1"
	"github.com/athanorlabs/go-schnorr/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

// Scheme signs and verifies Schnorr signatures over one group with one
// challenge digest. A Scheme holds no mutable state and is safe for
// concurrent use as long as its random source is.
type Scheme struct {
	curve Curve
	hash  HashFunc
	rand  io.Reader
}

// Option configures a Scheme.
type Option func(*Scheme)

// WithHash sets the digest used to derive the challenge. Signer and verifier
// must agree on it.
func WithHash(h HashFunc) Option {
	return func(s *Scheme) {
		s.hash = h
	}
}

// WithRandom sets the source nonces are drawn from. It must be a
// cryptographically secure generator.
func WithRandom(r io.Reader) Option {
	return func(s *Scheme) {
		s.rand = r
	}
}

// New returns a Scheme over the given curve. By default it uses SHA-256 for
// the challenge and crypto/rand for nonces.
func New(curve Curve, opts ...Option) *Scheme {
	s := &Scheme{
		curve: curve,
		hash:  SHA256,
		rand:  rand.Reader,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Curve returns the group the scheme operates in.
func (s *Scheme) Curve() Curve {
	return s.curve
}

// PublicKey returns generator * x.
func (s *Scheme) PublicKey(x Scalar) Point {
	return s.curve.ScalarBaseMul(x)
}

var defaultScheme = New(secp256k1.NewCurve())

// Sign signs m with x over secp256k1, using SHA-256 and crypto/rand.
func Sign(x Scalar, m []byte) (*Signature, error) {
	return defaultScheme.Sign(x, m)
}

// Verify checks sig on m against p over secp256k1 with SHA-256.
func Verify(p Point, m []byte, sig *Signature) bool {
	return defaultScheme.Verify(p, m, sig)
}
