// Package p256 implements the group arithmetic over NIST P-256 (prime256v1).
package p256

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/cloudflare/circl/group"

	"github.com/athanorlabs/go-praos-vrf/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

const (
	pointSize  = 33
	scalarSize = 32

	prefixIdentity = 0x00
	prefixEven     = 0x02
	prefixOdd      = 0x03
)

var (
	g = group.P256

	order, _ = new(big.Int).SetString("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)

	errInvalidPoint  = errors.New("invalid p256 point encoding")
	errInvalidScalar = errors.New("invalid p256 scalar encoding")
)

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (*CurveImpl) Name() string {
	return "p256"
}

func (*CurveImpl) BitSize() uint64 {
	return 256
}

func (*CurveImpl) Order() *big.Int {
	return new(big.Int).Set(order)
}

func (*CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: g.Generator(),
	}
}

func (*CurveImpl) Identity() Point {
	return &PointImpl{
		inner: g.Identity(),
	}
}

func (*CurveImpl) NewRandomScalar() Scalar {
	return &ScalarImpl{
		inner: g.RandomScalar(rand.Reader),
	}
}

func (c *CurveImpl) ScalarFrom(in uint32) Scalar {
	return c.ScalarFromBigInt(new(big.Int).SetUint64(uint64(in)))
}

func (*CurveImpl) ScalarFromBigInt(in *big.Int) Scalar {
	var b [scalarSize]byte
	new(big.Int).Mod(in, order).FillBytes(b[:])

	s := g.NewScalar()
	if err := s.UnmarshalBinary(b[:]); err != nil {
		panic(err)
	}
	return &ScalarImpl{
		inner: s,
	}
}

func (*CurveImpl) ScalarBaseMul(s Scalar) Point {
	return &PointImpl{
		inner: g.NewElement().MulGen(mustScalar(s).inner),
	}
}

func (*CurveImpl) ScalarMul(s Scalar, p Point) Point {
	return mustPoint(p).ScalarMul(s)
}

func (*CurveImpl) MultiScalarMul(scalars []Scalar, points []Point) (Point, error) {
	if len(scalars) != len(points) {
		return nil, types.ErrLengthMismatch
	}

	sum := g.Identity()
	for i := range scalars {
		term := g.NewElement().Mul(mustPoint(points[i]).inner, mustScalar(scalars[i]).inner)
		sum.Add(sum, term)
	}
	return &PointImpl{
		inner: sum,
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

// DecodeToPoint accepts the 33-byte encodings produced by PointImpl.Encode.
func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) != pointSize {
		return nil, errInvalidPoint
	}

	switch in[0] {
	case prefixIdentity:
		for _, b := range in[1:] {
			if b != 0 {
				return nil, errInvalidPoint
			}
		}
		return c.Identity(), nil
	case prefixEven, prefixOdd:
	default:
		return nil, errInvalidPoint
	}

	e := g.NewElement()
	if err := e.UnmarshalBinary(in); err != nil {
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
	if new(big.Int).SetBytes(in).Cmp(order) >= 0 {
		return nil, errInvalidScalar
	}

	s := g.NewScalar()
	if err := s.UnmarshalBinary(in); err != nil {
		return nil, errInvalidScalar
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

type ScalarImpl struct {
	inner group.Scalar
}

func mustScalar(s Scalar) *ScalarImpl {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *p256.ScalarImpl")
	}
	return ss
}

func (s *ScalarImpl) Copy() Scalar {
	return &ScalarImpl{
		inner: s.inner.Copy(),
	}
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	return &ScalarImpl{
		inner: g.NewScalar().Add(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	return &ScalarImpl{
		inner: g.NewScalar().Sub(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: g.NewScalar().Neg(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	return &ScalarImpl{
		inner: g.NewScalar().Mul(s.inner, mustScalar(b).inner),
	}
}

// Inverse returns 0 for the zero scalar.
func (s *ScalarImpl) Inverse() Scalar {
	if s.IsZero() {
		return &ScalarImpl{
			inner: g.NewScalar(),
		}
	}
	return &ScalarImpl{
		inner: g.NewScalar().Inv(s.inner),
	}
}

// Encode returns the 32-byte big endian encoding.
func (s *ScalarImpl) Encode() []byte {
	b, err := s.inner.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return append([]byte(nil), b...)
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	return s.inner.IsEqual(mustScalar(b).inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsEqual(g.NewScalar())
}

type PointImpl struct {
	inner group.Element
}

func mustPoint(p Point) *PointImpl {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *p256.PointImpl")
	}
	return pp
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: p.inner.Copy(),
	}
}

func (p *PointImpl) Add(b Point) Point {
	return &PointImpl{
		inner: g.NewElement().Add(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	return p.Add(b.Negate())
}

func (p *PointImpl) Negate() Point {
	return &PointImpl{
		inner: g.NewElement().Neg(p.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	return &PointImpl{
		inner: g.NewElement().Mul(p.inner, mustScalar(s).inner),
	}
}

// Encode returns the 33-byte SEC1 compressed encoding. The point at infinity
// has no SEC1 compressed form and encodes as 0x00 followed by zeros, which no
// curve point can share.
func (p *PointImpl) Encode() []byte {
	if p.inner.IsIdentity() {
		return make([]byte, pointSize)
	}

	b, err := p.inner.MarshalBinaryCompress()
	if err != nil {
		panic(err)
	}
	return b
}

func (p *PointImpl) IsZero() bool {
	return p.inner.IsIdentity()
}

func (p *PointImpl) Equals(other Point) bool {
	return p.inner.IsEqual(mustPoint(other).inner)
}
