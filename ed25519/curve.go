package ed25519

import (
	"encoding/binary"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"github.com/athanorlabs/go-schnorr/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

const (
	scalarSize = 32
	pointSize  = 32
	digestSize = 32
)

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (*CurveImpl) Name() string {
	return "ed25519"
}

func (*CurveImpl) ScalarSize() int {
	return scalarSize
}

func (*CurveImpl) PointSize() int {
	return pointSize
}

func (*CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: edwards25519.NewGeneratorPoint(),
	}
}

// NewRandomScalar reduces 64 bytes read from r modulo the group order.
func (*CurveImpl) NewRandomScalar(r io.Reader) (Scalar, error) {
	var b [64]byte
	defer func() {
		for i := range b {
			b[i] = 0
		}
	}()

	if _, err := io.ReadFull(r, b[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrRandomnessExhausted, err)
	}

	s, err := new(edwards25519.Scalar).SetUniformBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (*CurveImpl) ScalarFromInt(in uint32) Scalar {
	var b [scalarSize]byte
	binary.LittleEndian.PutUint32(b[:4], in)

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

// ScalarFromDigest reads the digest big-endian, as the secp256k1 adapter does,
// so both groups derive challenges the same way.
func (*CurveImpl) ScalarFromDigest(d []byte) Scalar {
	if len(d) > digestSize {
		d = d[:digestSize]
	}

	// little-endian, zero-extended to the 64 bytes SetUniformBytes reduces
	var wide [64]byte
	for i := range d {
		wide[i] = d[len(d)-1-i]
	}

	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (*CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != scalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d",
			types.ErrInvalidInputLength, scalarSize, len(in))
	}

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrScalarOutOfRange, err)
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (*CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) != pointSize {
		return nil, fmt.Errorf("%w: point must be %d bytes, got %d",
			types.ErrInvalidInputLength, pointSize, len(in))
	}

	p, err := new(edwards25519.Point).SetBytes(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidPoint, err)
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	return p.ScalarMul(s)
}

type ScalarImpl struct {
	inner *edwards25519.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Add(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Subtract(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Multiply(s.inner, ss.inner),
	}
}

// Encode returns the 32-byte little-endian encoding of the scalar.
func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}
	return s.inner.Equal(ss.inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

type PointImpl struct {
	inner *edwards25519.Point
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, pp.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) IsZero() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return p.inner.Equal(pp.inner) == 1
}
