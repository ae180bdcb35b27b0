package schnorr

import (
	"fmt"
)

// Encode returns s || e, each as the curve's fixed-length scalar encoding.
// S and E must both be set, as they are on signatures returned by Sign and
// DecodeSignature.
func (sig *Signature) Encode() []byte {
	s := sig.S.Encode()
	e := sig.E.Encode()

	b := make([]byte, 0, len(s)+len(e))
	b = append(b, s...)
	return append(b, e...)
}

// DecodeSignature decodes s || e for the given curve.
func DecodeSignature(curve Curve, in []byte) (*Signature, error) {
	scalarLen := curve.ScalarSize()
	if len(in) != 2*scalarLen {
		return nil, fmt.Errorf("%w: signature must be %d bytes, got %d",
			ErrInvalidInputLength, 2*scalarLen, len(in))
	}

	s, err := curve.DecodeToScalar(in[:scalarLen])
	if err != nil {
		return nil, fmt.Errorf("failed to decode s: %w", err)
	}

	e, err := curve.DecodeToScalar(in[scalarLen:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode e: %w", err)
	}

	return &Signature{
		S: s,
		E: e,
	}, nil
}
