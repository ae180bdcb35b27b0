package schnorr

// Verify reports whether sig is a valid signature on m for the public point p.
// It recomputes R' = s*G + e*p and checks that H(enc(R') || m) equals e.
func (s *Scheme) Verify(p Point, m []byte, sig *Signature) bool {
	if isNil(p) || sig == nil || isNil(sig.S) || isNil(sig.E) {
		return false
	}

	sG := s.curve.ScalarBaseMul(sig.S)
	eP := s.curve.ScalarMul(sig.E, p)
	R := sG.Add(eP)

	e := challenge(s.curve, s.hash, R, m)
	return e.Eq(sig.E)
}
