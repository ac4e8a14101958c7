// Package ec29 implements the toy curve y^2 = x^3 + 4x + 20 over GF(29), a
// group of prime order 37 generated by (1, 5). It exists for tests only: the
// group is trivially small and can be configured to return fixed
// "random" scalars.
package ec29

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/athanorlabs/go-praos-vrf/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

const (
	pointSize  = 2
	scalarSize = 1
)

var (
	fieldP = big.NewInt(29)
	coeffA = big.NewInt(4)
	coeffB = big.NewInt(20)
	order  = big.NewInt(37)
	genX   = big.NewInt(1)
	genY   = big.NewInt(5)

	errInvalidPoint  = errors.New("invalid ec29 point encoding")
	errInvalidScalar = errors.New("invalid ec29 scalar encoding")
)

// Option configures the toy curve.
type Option func(*CurveImpl)

// WithFixedRandomness makes NewRandomScalar always return k mod 37.
func WithFixedRandomness(k uint32) Option {
	return func(c *CurveImpl) {
		fixed := new(big.Int).Mod(new(big.Int).SetUint64(uint64(k)), order)
		c.fixed = fixed
	}
}

type CurveImpl struct {
	fixed *big.Int
}

func NewCurve(opts ...Option) Curve {
	c := &CurveImpl{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (*CurveImpl) Name() string {
	return "ec29"
}

func (*CurveImpl) BitSize() uint64 {
	return 6
}

func (*CurveImpl) Order() *big.Int {
	return new(big.Int).Set(order)
}

func (*CurveImpl) BasePoint() Point {
	return &PointImpl{
		x: new(big.Int).Set(genX),
		y: new(big.Int).Set(genY),
	}
}

func (*CurveImpl) Identity() Point {
	return &PointImpl{
		inf: true,
	}
}

func (c *CurveImpl) NewRandomScalar() Scalar {
	if c.fixed != nil {
		return &ScalarImpl{
			inner: new(big.Int).Set(c.fixed),
		}
	}

	k, err := rand.Int(rand.Reader, order)
	if err != nil {
		panic(err)
	}
	return &ScalarImpl{
		inner: k,
	}
}

func (c *CurveImpl) ScalarFrom(in uint32) Scalar {
	return c.ScalarFromBigInt(new(big.Int).SetUint64(uint64(in)))
}

func (*CurveImpl) ScalarFromBigInt(in *big.Int) Scalar {
	return &ScalarImpl{
		inner: new(big.Int).Mod(in, order),
	}
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	return c.BasePoint().ScalarMul(s)
}

func (*CurveImpl) ScalarMul(s Scalar, p Point) Point {
	return p.ScalarMul(s)
}

func (c *CurveImpl) MultiScalarMul(scalars []Scalar, points []Point) (Point, error) {
	if len(scalars) != len(points) {
		return nil, types.ErrLengthMismatch
	}

	sum := c.Identity()
	for i := range scalars {
		sum = sum.Add(points[i].ScalarMul(scalars[i]))
	}
	return sum, nil
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
	if len(in) != pointSize || (in[0] != 2 && in[0] != 3) {
		return nil, errInvalidPoint
	}

	x := new(big.Int).SetUint64(uint64(in[1]))
	if x.Cmp(fieldP) >= 0 {
		return nil, errInvalidPoint
	}

	// y^2 = x^3 + ax + b
	rhs := new(big.Int).Exp(x, big.NewInt(3), fieldP)
	rhs.Add(rhs, new(big.Int).Mul(coeffA, x))
	rhs.Add(rhs, coeffB)
	rhs.Mod(rhs, fieldP)

	y := new(big.Int).ModSqrt(rhs, fieldP)
	if y == nil {
		return nil, errInvalidPoint
	}
	if y.Bit(0) != uint(in[0]&1) {
		y.Sub(fieldP, y).Mod(y, fieldP)
	}

	return &PointImpl{
		x: x,
		y: y,
	}, nil
}

func (*CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != scalarSize {
		return nil, errInvalidScalar
	}

	k := new(big.Int).SetUint64(uint64(in[0]))
	if k.Cmp(order) >= 0 {
		return nil, errInvalidScalar
	}
	return &ScalarImpl{
		inner: k,
	}, nil
}

type ScalarImpl struct {
	inner *big.Int
}

func mustScalar(s Scalar) *ScalarImpl {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ec29.ScalarImpl")
	}
	return ss
}

func reduce(k *big.Int) *ScalarImpl {
	return &ScalarImpl{
		inner: k.Mod(k, order),
	}
}

func (s *ScalarImpl) Copy() Scalar {
	return &ScalarImpl{
		inner: new(big.Int).Set(s.inner),
	}
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	return reduce(new(big.Int).Add(s.inner, mustScalar(b).inner))
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	return reduce(new(big.Int).Sub(s.inner, mustScalar(b).inner))
}

func (s *ScalarImpl) Negate() Scalar {
	return reduce(new(big.Int).Neg(s.inner))
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	return reduce(new(big.Int).Mul(s.inner, mustScalar(b).inner))
}

func (s *ScalarImpl) Inverse() Scalar {
	inv := new(big.Int).ModInverse(s.inner, order)
	if inv == nil {
		inv = new(big.Int)
	}
	return &ScalarImpl{
		inner: inv,
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.FillBytes(make([]byte, scalarSize))
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	return s.inner.Cmp(mustScalar(b).inner) == 0
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Sign() == 0
}

// PointImpl is an affine point; inf marks the point at infinity.
type PointImpl struct {
	x, y *big.Int
	inf  bool
}

func mustPoint(p Point) *PointImpl {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ec29.PointImpl")
	}
	return pp
}

func (p *PointImpl) Copy() Point {
	if p.inf {
		return &PointImpl{inf: true}
	}
	return &PointImpl{
		x: new(big.Int).Set(p.x),
		y: new(big.Int).Set(p.y),
	}
}

func (p *PointImpl) Add(b Point) Point {
	q := mustPoint(b)
	switch {
	case p.inf:
		return q.Copy()
	case q.inf:
		return p.Copy()
	}

	var lambda *big.Int
	if p.x.Cmp(q.x) == 0 {
		sumY := new(big.Int).Add(p.y, q.y)
		if sumY.Mod(sumY, fieldP).Sign() == 0 {
			return &PointImpl{inf: true}
		}

		// (3x^2 + a) / 2y
		num := new(big.Int).Mul(p.x, p.x)
		num.Mul(num, big.NewInt(3)).Add(num, coeffA)
		den := new(big.Int).Lsh(p.y, 1)
		lambda = num.Mul(num, den.ModInverse(den.Mod(den, fieldP), fieldP))
	} else {
		num := new(big.Int).Sub(q.y, p.y)
		den := new(big.Int).Sub(q.x, p.x)
		lambda = num.Mul(num, den.ModInverse(den.Mod(den, fieldP), fieldP))
	}
	lambda.Mod(lambda, fieldP)

	x := new(big.Int).Mul(lambda, lambda)
	x.Sub(x, p.x).Sub(x, q.x).Mod(x, fieldP)

	y := new(big.Int).Sub(p.x, x)
	y.Mul(y, lambda).Sub(y, p.y).Mod(y, fieldP)

	return &PointImpl{
		x: x,
		y: y,
	}
}

func (p *PointImpl) Sub(b Point) Point {
	return p.Add(b.Negate())
}

func (p *PointImpl) Negate() Point {
	if p.inf {
		return &PointImpl{inf: true}
	}
	y := new(big.Int).Sub(fieldP, p.y)
	return &PointImpl{
		x: new(big.Int).Set(p.x),
		y: y.Mod(y, fieldP),
	}
}

// ScalarMul uses double-and-add; timing is irrelevant for a toy group.
func (p *PointImpl) ScalarMul(s Scalar) Point {
	k := mustScalar(s).inner
	var acc Point = &PointImpl{inf: true}
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = acc.Add(acc)
		if k.Bit(i) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}

func (p *PointImpl) Encode() []byte {
	if p.inf {
		return make([]byte, pointSize)
	}
	return []byte{byte(2 | p.y.Bit(0)), byte(p.x.Uint64())}
}

func (p *PointImpl) IsZero() bool {
	return p.inf
}

func (p *PointImpl) Equals(other Point) bool {
	o := mustPoint(other)
	if p.inf || o.inf {
		return p.inf == o.inf
	}
	return p.x.Cmp(o.x) == 0 && p.y.Cmp(o.y) == 0
}
