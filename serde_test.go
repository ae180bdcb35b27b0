package schnorr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignature_Serde(t *testing.T) {
	for _, curve := range testCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			s := New(curve)
			x, p := newKeyPair(t, s)
			m := []byte("message")

			sig, err := s.Sign(x, m)
			require.NoError(t, err)

			ser := sig.Encode()
			require.Len(t, ser, 2*curve.ScalarSize())
			require.Equal(t, sig.S.Encode(), ser[:curve.ScalarSize()])
			require.Equal(t, sig.E.Encode(), ser[curve.ScalarSize():])

			deser, err := DecodeSignature(curve, ser)
			require.NoError(t, err)
			require.True(t, sig.S.Eq(deser.S))
			require.True(t, sig.E.Eq(deser.E))
			require.True(t, s.Verify(p, m, deser))

			// s and e are not interchangeable
			swapped := append(append([]byte{}, ser[curve.ScalarSize():]...), ser[:curve.ScalarSize()]...)
			deser, err = DecodeSignature(curve, swapped)
			require.NoError(t, err)
			require.False(t, s.Verify(p, m, deser))
		})
	}
}

func TestDecodeSignature_InvalidLength(t *testing.T) {
	for _, curve := range testCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			for _, l := range []int{0, 1, curve.ScalarSize(), 2*curve.ScalarSize() - 1, 2*curve.ScalarSize() + 1} {
				_, err := DecodeSignature(curve, make([]byte, l))
				require.ErrorIs(t, err, ErrInvalidInputLength, "length %d", l)
			}
		})
	}
}

func TestDecodeSignature_OutOfRange(t *testing.T) {
	for _, curve := range testCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			size := curve.ScalarSize()
			high := bytes.Repeat([]byte{0xff}, size)
			zero := make([]byte, size)

			_, err := DecodeSignature(curve, append(append([]byte{}, high...), zero...))
			require.ErrorIs(t, err, ErrScalarOutOfRange)

			_, err = DecodeSignature(curve, append(append([]byte{}, zero...), high...))
			require.ErrorIs(t, err, ErrScalarOutOfRange)
		})
	}
}

func TestDecodeSignature_Zero(t *testing.T) {
	for _, curve := range testCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			sig, err := DecodeSignature(curve, make([]byte, 2*curve.ScalarSize()))
			require.NoError(t, err)
			require.True(t, sig.S.IsZero())
			require.True(t, sig.E.IsZero())

			s := New(curve)
			x := curve.ScalarFromInt(1)
			require.False(t, s.Verify(s.PublicKey(x), []byte{1, 1, 1, 1}, sig))
		})
	}
}
