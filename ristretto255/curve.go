// Package ristretto255 implements the group arithmetic over the prime-order
// ristretto255 group.
package ristretto255

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/gtank/ristretto255"

	"github.com/athanorlabs/go-praos-vrf/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

const (
	pointSize  = 32
	scalarSize = 32
)

var (
	order, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

	errInvalidPoint  = errors.New("invalid ristretto255 element encoding")
	errInvalidScalar = errors.New("invalid ristretto255 scalar encoding")
)

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (*CurveImpl) Name() string {
	return "ristretto255"
}

func (*CurveImpl) BitSize() uint64 {
	return 252
}

func (*CurveImpl) Order() *big.Int {
	return new(big.Int).Set(order)
}

func (*CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: ristretto255.NewGeneratorElement(),
	}
}

func (*CurveImpl) Identity() Point {
	return &PointImpl{
		inner: ristretto255.NewIdentityElement(),
	}
}

func (*CurveImpl) NewRandomScalar() Scalar {
	var b [64]byte
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err)
	}

	s, err := ristretto255.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) ScalarFrom(in uint32) Scalar {
	return c.ScalarFromBigInt(new(big.Int).SetUint64(uint64(in)))
}

func (*CurveImpl) ScalarFromBigInt(in *big.Int) Scalar {
	reduced := new(big.Int).Mod(in, order)

	var b [scalarSize]byte
	reduced.FillBytes(b[:])
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	s, err := ristretto255.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (*CurveImpl) ScalarBaseMul(s Scalar) Point {
	return &PointImpl{
		inner: ristretto255.NewIdentityElement().ScalarBaseMult(mustScalar(s).inner),
	}
}

func (*CurveImpl) ScalarMul(s Scalar, p Point) Point {
	return mustPoint(p).ScalarMul(s)
}

func (*CurveImpl) MultiScalarMul(scalars []Scalar, points []Point) (Point, error) {
	if len(scalars) != len(points) {
		return nil, types.ErrLengthMismatch
	}

	ss := make([]*ristretto255.Scalar, len(scalars))
	es := make([]*ristretto255.Element, len(points))
	for i := range scalars {
		ss[i] = mustScalar(scalars[i]).inner
		es[i] = mustPoint(points[i]).inner
	}

	return &PointImpl{
		inner: ristretto255.NewIdentityElement().VarTimeMultiScalarMult(ss, es),
	}, nil
}

func (c *CurveImpl) HashToPoint(s Scalar) Point {
	return c.ScalarBaseMul(s)
}

func (*CurveImpl) CompressedPointSize() int {
	return pointSize
}

func (*CurveImpl) ScalarSize() int {
	return scalarSize
}

func (*CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) != pointSize {
		return nil, errInvalidPoint
	}

	e, err := ristretto255.NewIdentityElement().SetCanonicalBytes(in)
	if err != nil {
		return nil, errInvalidPoint
	}

	return &PointImpl{
		inner: e,
	}, nil
}

func (*CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != scalarSize {
		return nil, errInvalidScalar
	}

	s, err := ristretto255.NewScalar().SetCanonicalBytes(in)
	if err != nil {
		return nil, errInvalidScalar
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

type ScalarImpl struct {
	inner *ristretto255.Scalar
}

func mustScalar(s Scalar) *ScalarImpl {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto255.ScalarImpl")
	}
	return ss
}

func (s *ScalarImpl) Copy() Scalar {
	return &ScalarImpl{
		inner: ristretto255.NewScalar().Set(s.inner),
	}
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	return &ScalarImpl{
		inner: ristretto255.NewScalar().Add(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	return &ScalarImpl{
		inner: ristretto255.NewScalar().Subtract(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: ristretto255.NewScalar().Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	return &ScalarImpl{
		inner: ristretto255.NewScalar().Multiply(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Inverse() Scalar {
	return &ScalarImpl{
		inner: ristretto255.NewScalar().Invert(s.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	return s.inner.Equal(mustScalar(b).inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(ristretto255.NewScalar()) == 1
}

type PointImpl struct {
	inner *ristretto255.Element
}

func mustPoint(p Point) *PointImpl {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto255.PointImpl")
	}
	return pp
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: ristretto255.NewIdentityElement().Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	return &PointImpl{
		inner: ristretto255.NewIdentityElement().Add(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	return &PointImpl{
		inner: ristretto255.NewIdentityElement().Subtract(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) Negate() Point {
	return &PointImpl{
		inner: ristretto255.NewIdentityElement().Negate(p.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	return &PointImpl{
		inner: ristretto255.NewIdentityElement().ScalarMult(mustScalar(s).inner, p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) IsZero() bool {
	return p.inner.Equal(ristretto255.NewIdentityElement()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	return p.inner.Equal(mustPoint(other).inner) == 1
}
