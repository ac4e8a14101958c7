package ed25519

import (
	"crypto/rand"
	"errors"
	"math/big"

	"filippo.io/edwards25519"

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
	// l = 2^252 + 27742317777372353535851937790883648493
	order, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

	errInvalidPoint  = errors.New("invalid ed25519 point encoding")
	errInvalidScalar = errors.New("invalid ed25519 scalar encoding")
	errTorsion       = errors.New("ed25519 point is not in the prime-order subgroup")

	// 8^-1 mod l, used to strip the cofactor in isTorsionFree
	invEight = mustScalar(new(CurveImpl).ScalarFromBigInt(new(big.Int).ModInverse(big.NewInt(8), order))).inner
)

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (*CurveImpl) Name() string {
	return "ed25519"
}

func (*CurveImpl) BitSize() uint64 {
	return 252
}

func (*CurveImpl) Order() *big.Int {
	return new(big.Int).Set(order)
}

func (*CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: edwards25519.NewGeneratorPoint(),
	}
}

func (*CurveImpl) Identity() Point {
	return &PointImpl{
		inner: edwards25519.NewIdentityPoint(),
	}
}

func (*CurveImpl) NewRandomScalar() Scalar {
	var b [64]byte
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err)
	}

	s, err := new(edwards25519.Scalar).SetUniformBytes(b[:])
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

	// edwards25519 scalars are little endian
	var b [scalarSize]byte
	reduced.FillBytes(b[:])
	reverse(b[:])

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (*CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss := mustScalar(s)
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(ss.inner),
	}
}

func (*CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss := mustScalar(s)
	pp := mustPoint(p)
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, pp.inner),
	}
}

func (*CurveImpl) MultiScalarMul(scalars []Scalar, points []Point) (Point, error) {
	if len(scalars) != len(points) {
		return nil, types.ErrLengthMismatch
	}

	ss := make([]*edwards25519.Scalar, len(scalars))
	ps := make([]*edwards25519.Point, len(points))
	for i := range scalars {
		ss[i] = mustScalar(scalars[i]).inner
		ps[i] = mustPoint(points[i]).inner
	}

	return &PointImpl{
		inner: new(edwards25519.Point).VarTimeMultiScalarMult(ss, ps),
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

	p, err := new(edwards25519.Point).SetBytes(in)
	if err != nil {
		return nil, errInvalidPoint
	}
	if !isTorsionFree(p) {
		return nil, errTorsion
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (*CurveImpl) DecodeToScalar(in []byte) (Scalar, error) {
	if len(in) != scalarSize {
		return nil, errInvalidScalar
	}

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(in)
	if err != nil {
		return nil, errInvalidScalar
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

type ScalarImpl struct {
	inner *edwards25519.Scalar
}

func mustScalar(s Scalar) *ScalarImpl {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}
	return ss
}

func (s *ScalarImpl) Copy() Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Set(s.inner),
	}
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Add(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Subtract(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Multiply(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Inverse() Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Invert(s.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	return s.inner.Equal(mustScalar(b).inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

type PointImpl struct {
	inner *edwards25519.Point
}

func mustPoint(p Point) *PointImpl {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}
	return pp
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Subtract(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) Negate() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Negate(p.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(mustScalar(s).inner, p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) IsZero() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	return p.inner.Equal(mustPoint(other).inner) == 1
}

// isTorsionFree reports whether p lies in the subgroup of order l. Every
// other way of producing a PointImpl stays inside that subgroup, so decoding
// is the only place a small-order component can enter.
func isTorsionFree(p *edwards25519.Point) bool {
	q := new(edwards25519.Point).MultByCofactor(p)
	r := new(edwards25519.Point).ScalarMult(invEight, q)
	return r.Equal(p) == 1
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
