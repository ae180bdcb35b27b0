package types

import (
	"errors"
	"io"
)

var (
	// ErrRandomnessExhausted is returned when the random source cannot supply
	// the bytes needed for a scalar.
	ErrRandomnessExhausted = errors.New("random source exhausted")
	// ErrInvalidInputLength is returned when a scalar, point or signature is
	// decoded from a byte string of the wrong length.
	ErrInvalidInputLength = errors.New("invalid input length")
	// ErrScalarOutOfRange is returned when encoded scalar bytes are not less
	// than the group order.
	ErrScalarOutOfRange = errors.New("scalar out of range")
	// ErrInvalidPoint is returned when bytes do not encode a point on the curve.
	ErrInvalidPoint = errors.New("invalid point encoding")
)

// Curve is a prime-order group together with its scalar field.
type Curve interface {
	Name() string
	ScalarSize() int
	// PointSize is the length of Point.Encode.
	PointSize() int
	BasePoint() Point
	NewRandomScalar(io.Reader) (Scalar, error)
	ScalarFromInt(uint32) Scalar
	// ScalarFromDigest interprets the first 32 bytes of the digest as a
	// big-endian integer and reduces it modulo the group order.
	ScalarFromDigest([]byte) Scalar
	DecodeToScalar([]byte) (Scalar, error)
	DecodeToPoint([]byte) (Point, error)
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Add(Point) Point
	ScalarMul(Scalar) Point
	// Encode returns the canonical fixed-length encoding of the point.
	Encode() []byte
	IsZero() bool
	Equals(other Point) bool
}
