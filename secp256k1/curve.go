package secp256k1

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/athanorlabs/go-schnorr/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

const (
	scalarSize            = 32
	compressedPointSize   = 33
	uncompressedPointSize = 65
)

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (*CurveImpl) Name() string {
	return "secp256k1"
}

func (*CurveImpl) ScalarSize() int {
	return scalarSize
}

// PointSize is the length of a SEC1 uncompressed point (0x04 || X || Y), the
// form points are encoded in. The identity is encoded as the same number of
// zero bytes.
func (*CurveImpl) PointSize() int {
	return uncompressedPointSize
}

func (*CurveImpl) BasePoint() Point {
	return scalarBaseMul(new(secp256k1.ModNScalar).SetInt(1))
}

// NewRandomScalar draws a uniform non-zero scalar from r by rejection
// sampling 32-byte big-endian values.
func (*CurveImpl) NewRandomScalar(r io.Reader) (Scalar, error) {
	var b [scalarSize]byte
	defer func() {
		for i := range b {
			b[i] = 0
		}
	}()

	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrRandomnessExhausted, err)
		}

		s := new(secp256k1.ModNScalar)
		overflow := s.SetBytes(&b)
		if overflow == 0 && !s.IsZero() {
			return &ScalarImpl{
				inner: s,
			}, nil
		}
	}
}

func (*CurveImpl) ScalarFromInt(in uint32) Scalar {
	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).SetInt(in),
	}
}

func (*CurveImpl) ScalarFromDigest(d []byte) Scalar {
	s := new(secp256k1.ModNScalar)
	_ = s.SetByteSlice(d)
	return &ScalarImpl{
		inner: s,
	}
}

func (*CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != scalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d",
			types.ErrInvalidInputLength, scalarSize, len(in))
	}

	var b [scalarSize]byte
	copy(b[:], in)

	s := new(secp256k1.ModNScalar)
	if s.SetBytes(&b) != 0 {
		return nil, types.ErrScalarOutOfRange
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

// DecodeToPoint accepts the 65-byte uncompressed encoding produced by Encode
// as well as the 33-byte compressed form.
func (*CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) != uncompressedPointSize && len(in) != compressedPointSize {
		return nil, fmt.Errorf("%w: point must be %d or %d bytes, got %d",
			types.ErrInvalidInputLength, uncompressedPointSize, compressedPointSize, len(in))
	}

	if isAllZero(in) {
		return &PointImpl{}, nil
	}

	pk, err := secp256k1.ParsePubKey(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidPoint, err)
	}

	p := new(PointImpl)
	pk.AsJacobian(&p.inner)
	return p, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	return scalarBaseMul(ss.inner)
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	return p.ScalarMul(s)
}

func scalarBaseMul(k *secp256k1.ModNScalar) *PointImpl {
	p := new(PointImpl)
	secp256k1.ScalarBaseMultNonConst(k, &p.inner)
	p.inner.ToAffine()
	return p
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

type ScalarImpl struct {
	inner *secp256k1.ModNScalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).Add2(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	neg := new(secp256k1.ModNScalar).NegateVal(ss.inner)
	return &ScalarImpl{
		inner: neg.Add(s.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).NegateVal(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).Mul2(s.inner, ss.inner),
	}
}

// Encode returns the 32-byte big-endian encoding of the scalar.
func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	return s.inner.Equals(ss.inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsZero()
}

// PointImpl always holds a point in affine form (Z = 1), with the identity
// represented as X = Y = 0.
type PointImpl struct {
	inner secp256k1.JacobianPoint
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	r := new(PointImpl)
	secp256k1.AddNonConst(&p.inner, &pp.inner, &r.inner)
	r.inner.ToAffine()
	return r
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}

	r := new(PointImpl)
	if p.IsZero() || ss.inner.IsZero() {
		return r
	}

	secp256k1.ScalarMultNonConst(ss.inner, &p.inner, &r.inner)
	r.inner.ToAffine()
	return r
}

func (p *PointImpl) Encode() []byte {
	if p.IsZero() {
		return make([]byte, uncompressedPointSize)
	}

	return secp256k1.NewPublicKey(&p.inner.X, &p.inner.Y).SerializeUncompressed()
}

func (p *PointImpl) IsZero() bool {
	return p.inner.X.IsZero() && p.inner.Y.IsZero()
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	return p.inner.X.Equals(&pp.inner.X) && p.inner.Y.Equals(&pp.inner.Y)
}
