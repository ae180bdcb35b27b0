package schnorr

import (
	"fmt"
	"reflect"
)

// Signature is the pair (s, e): s is the response, e the challenge.
type Signature struct {
	S Scalar
	E Scalar
}

// Sign signs m with the private scalar x. A fresh nonce is drawn from the
// scheme's random source on every call; if the source fails, Sign returns an
// error wrapping ErrRandomnessExhausted and produces no signature.
// A nil x, including a typed nil, is rejected.
func (s *Scheme) Sign(x Scalar, m []byte) (*Signature, error) {
	if isNil(x) {
		return nil, errNilPrivateKey
	}

	k, err := s.curve.NewRandomScalar(s.rand)
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	R := s.curve.ScalarBaseMul(k)
	e := challenge(s.curve, s.hash, R, m)

	return &Signature{
		S: k.Sub(x.Mul(e)),
		E: e,
	}, nil
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
