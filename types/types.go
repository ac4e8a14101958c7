package types

import (
	"errors"
	"math/big"
)

// ErrLengthMismatch is returned by MultiScalarMul when the scalar and point
// slices differ in length.
var ErrLengthMismatch = errors.New("number of scalars and points differ")

// Curve is a prime-order group together with its scalar field.
// Implementations are immutable and safe for concurrent use.
type Curve interface {
	Name() string
	BitSize() uint64
	Order() *big.Int
	BasePoint() Point
	Identity() Point
	NewRandomScalar() Scalar
	ScalarFrom(uint32) Scalar
	// ScalarFromBigInt reduces the given integer modulo the group order.
	ScalarFromBigInt(*big.Int) Scalar
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
	// MultiScalarMul returns sum(scalars[i] * points[i]).
	MultiScalarMul(scalars []Scalar, points []Point) (Point, error)
	// HashToPoint maps a scalar s to s * BasePoint().
	HashToPoint(Scalar) Point
	CompressedPointSize() int
	ScalarSize() int
	DecodeToPoint([]byte) (Point, error)
	DecodeToScalar([]byte) (Scalar, error)
}

type Scalar interface {
	Copy() Scalar
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Inverse() Scalar
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	Negate() Point
	ScalarMul(Scalar) Point
	Encode() []byte
	IsZero() bool
	Equals(other Point) bool
}
