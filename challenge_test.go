package schnorr

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-schnorr/secp256k1"
)

func TestChallenge_Deterministic(t *testing.T) {
	for _, curve := range testCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			R := curve.BasePoint()
			m := []byte("message")

			e1 := challenge(curve, SHA256, R, m)
			e2 := challenge(curve, SHA256, R, m)
			require.True(t, e1.Eq(e2))

			e3 := challenge(curve, SHA256, R, []byte("massage"))
			require.False(t, e1.Eq(e3))

			e4 := challenge(curve, SHA3, R, m)
			require.False(t, e1.Eq(e4))
		})
	}
}

func TestChallenge_Preimage(t *testing.T) {
	for _, curve := range testCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			R := curve.ScalarBaseMul(curve.ScalarFromInt(5))
			m := []byte{1, 1, 1, 1}

			digest := sha256.Sum256(append(R.Encode(), m...))
			expected := curve.ScalarFromDigest(digest[:])
			require.True(t, expected.Eq(challenge(curve, SHA256, R, m)))
		})
	}
}

func TestChallenge_EmptyMessage(t *testing.T) {
	for _, curve := range testCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			R := curve.BasePoint()

			digest := sha256.Sum256(R.Encode())
			expected := curve.ScalarFromDigest(digest[:])
			require.True(t, expected.Eq(challenge(curve, SHA256, R, nil)))
			require.True(t, expected.Eq(challenge(curve, SHA256, R, []byte{})))
		})
	}
}

func TestChallenge_IdentityCommitment(t *testing.T) {
	for _, curve := range testCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			id := curve.ScalarBaseMul(curve.ScalarFromInt(0))
			require.True(t, id.IsZero())
			require.Len(t, id.Encode(), curve.PointSize())

			e := challenge(curve, SHA256, id, []byte{1, 1, 1, 1})
			require.False(t, e.IsZero())
		})
	}
}

func TestChallenge_KnownAnswer(t *testing.T) {
	curve := secp256k1.NewCurve()
	m := []byte{1, 1, 1, 1}

	// SHA-256(0x04 || Gx || Gy || m) mod n
	e := challenge(curve, SHA256, curve.BasePoint(), m)
	require.Equal(t,
		"d3d1a8549f5fdb2977137ec70d7fb54366e21f128ca899ba67e2115c1a6ab721",
		hex.EncodeToString(e.Encode()),
	)

	// SHA-256(65 zero bytes || m) mod n
	id := curve.ScalarBaseMul(curve.ScalarFromInt(0))
	e = challenge(curve, SHA256, id, m)
	require.Equal(t,
		"a95dee0f34dd406292236cd758d8d4de94a4804ca5d1e6d0afa58af8dab8437c",
		hex.EncodeToString(e.Encode()),
	)
}
