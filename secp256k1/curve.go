package secp256k1

import (
	"bytes"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

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
)

var (
	identityEncoding [pointSize]byte

	errInvalidPoint  = errors.New("invalid secp256k1 point encoding")
	errInvalidScalar = errors.New("invalid secp256k1 scalar encoding")
)

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (*CurveImpl) Name() string {
	return "secp256k1"
}

func (*CurveImpl) BitSize() uint64 {
	return 256
}

func (*CurveImpl) Order() *big.Int {
	return new(big.Int).Set(secp256k1.Params().N)
}

func (c *CurveImpl) BasePoint() Point {
	return c.ScalarBaseMul(c.ScalarFrom(1))
}

func (*CurveImpl) Identity() Point {
	return &PointImpl{}
}

func (*CurveImpl) NewRandomScalar() Scalar {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		panic(err)
	}

	s := new(secp256k1.ModNScalar).Set(&priv.Key)
	priv.Zero()
	return &ScalarImpl{
		inner: s,
	}
}

func (*CurveImpl) ScalarFrom(in uint32) Scalar {
	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).SetInt(in),
	}
}

func (*CurveImpl) ScalarFromBigInt(in *big.Int) Scalar {
	reduced := new(big.Int).Mod(in, secp256k1.Params().N)

	var b [scalarSize]byte
	reduced.FillBytes(b[:])

	s := new(secp256k1.ModNScalar)
	s.SetBytes(&b)
	return &ScalarImpl{
		inner: s,
	}
}

func (*CurveImpl) ScalarBaseMul(s Scalar) Point {
	p := &PointImpl{}
	secp256k1.ScalarBaseMultNonConst(mustScalar(s).inner, &p.inner)
	return p
}

func (*CurveImpl) ScalarMul(s Scalar, p Point) Point {
	return mustPoint(p).ScalarMul(s)
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

func (c *CurveImpl) DecodeToPoint(in []byte) (Point, error) {
	if len(in) != pointSize {
		return nil, errInvalidPoint
	}
	if bytes.Equal(in, identityEncoding[:]) {
		return c.Identity(), nil
	}
	if in[0] != secp256k1.PubKeyFormatCompressedEven && in[0] != secp256k1.PubKeyFormatCompressedOdd {
		return nil, errInvalidPoint
	}

	pub, err := secp256k1.ParsePubKey(in)
	if err != nil {
		return nil, errInvalidPoint
	}

	p := &PointImpl{}
	pub.AsJacobian(&p.inner)
	return p, nil
}

func (*CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != scalarSize {
		return nil, errInvalidScalar
	}

	var b [scalarSize]byte
	copy(b[:], in)

	s := new(secp256k1.ModNScalar)
	if overflow := s.SetBytes(&b); overflow != 0 {
		return nil, errInvalidScalar
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

type ScalarImpl struct {
	inner *secp256k1.ModNScalar
}

func mustScalar(s Scalar) *ScalarImpl {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *secp256k1.ScalarImpl")
	}
	return ss
}

func (s *ScalarImpl) Copy() Scalar {
	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).Set(s.inner),
	}
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).Add2(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	neg := new(secp256k1.ModNScalar).NegateVal(mustScalar(b).inner)
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
	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).Mul2(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Inverse() Scalar {
	return &ScalarImpl{
		inner: new(secp256k1.ModNScalar).InverseValNonConst(s.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	b := s.inner.Bytes()
	return b[:]
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	return s.inner.Equals(mustScalar(b).inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.IsZero()
}

// PointImpl holds a point in jacobian coordinates. The zero value is the
// point at infinity.
type PointImpl struct {
	inner secp256k1.JacobianPoint
}

func mustPoint(p Point) *PointImpl {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}
	return pp
}

func (p *PointImpl) Copy() Point {
	c := &PointImpl{}
	c.inner.Set(&p.inner)
	return c
}

func (p *PointImpl) Add(b Point) Point {
	res := &PointImpl{}
	secp256k1.AddNonConst(&p.inner, &mustPoint(b).inner, &res.inner)
	return res
}

func (p *PointImpl) Sub(b Point) Point {
	return p.Add(b.Negate())
}

func (p *PointImpl) Negate() Point {
	if p.IsZero() {
		return &PointImpl{}
	}

	res := &PointImpl{}
	res.inner.Set(&p.inner)
	res.inner.ToAffine()
	res.inner.Y.Negate(1).Normalize()
	return res
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	res := &PointImpl{}
	if p.IsZero() {
		return res
	}

	secp256k1.ScalarMultNonConst(mustScalar(s).inner, &p.inner, &res.inner)
	return res
}

func (p *PointImpl) affine() secp256k1.JacobianPoint {
	var a secp256k1.JacobianPoint
	a.Set(&p.inner)
	a.ToAffine()
	return a
}

// Encode returns the 33-byte compressed encoding. The point at infinity has
// no compressed form and encodes as 0x00 followed by zeros.
func (p *PointImpl) Encode() []byte {
	if p.IsZero() {
		return make([]byte, pointSize)
	}

	a := p.affine()
	return secp256k1.NewPublicKey(&a.X, &a.Y).SerializeCompressed()
}

func (p *PointImpl) IsZero() bool {
	return (p.inner.X.IsZero() && p.inner.Y.IsZero()) || p.inner.Z.IsZero()
}

func (p *PointImpl) Equals(other Point) bool {
	o := mustPoint(other)
	if p.IsZero() || o.IsZero() {
		return p.IsZero() && o.IsZero()
	}

	a, b := p.affine(), o.affine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}
