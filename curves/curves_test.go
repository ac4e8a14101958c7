package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-praos-vrf/internal/ec29"
	"github.com/athanorlabs/go-praos-vrf/types"
)

func allCurves(t *testing.T) []types.Curve {
	var cs []types.Curve
	for _, name := range Names() {
		c, err := New(name)
		require.NoError(t, err)
		require.Equal(t, name, c.Name())
		cs = append(cs, c)
	}
	return append(cs, ec29.NewCurve())
}

func TestNew(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	require.Equal(t, Default, c.Name())

	_, err = New("ec29")
	require.Error(t, err)

	require.Equal(t, []string{"ed25519", "p256", "ristretto255", "secp256k1"}, Names())
}

func TestScalarArithmetic(t *testing.T) {
	for _, curve := range allCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			a, b := curve.NewRandomScalar(), curve.NewRandomScalar()
			zero := curve.ScalarFrom(0)
			one := curve.ScalarFrom(1)

			require.True(t, zero.IsZero())
			require.True(t, a.Sub(a).IsZero())
			require.True(t, a.Add(a.Negate()).IsZero())
			require.True(t, a.Add(b).Sub(b).Eq(a))
			require.True(t, a.Mul(b).Eq(b.Mul(a)))
			require.True(t, a.Mul(one).Eq(a))
			if !a.IsZero() {
				require.True(t, a.Mul(a.Inverse()).Eq(one))
			}

			c := a.Copy()
			require.True(t, c.Eq(a))
			require.False(t, c.Add(one).Eq(a))
		})
	}
}

func TestScalarFromBigInt(t *testing.T) {
	for _, curve := range allCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			order := curve.Order()
			require.True(t, curve.ScalarFromBigInt(order).IsZero())

			plusSeven := new(big.Int).Add(order, big.NewInt(7))
			require.True(t, curve.ScalarFromBigInt(plusSeven).Eq(curve.ScalarFrom(7)))

			// a full 256-bit digest is reduced
			max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
			want := new(big.Int).Mod(max, order)
			require.True(t, curve.ScalarFromBigInt(max).Eq(curve.ScalarFromBigInt(want)))
		})
	}
}

func TestGroupLaw(t *testing.T) {
	for _, curve := range allCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			a, b := curve.NewRandomScalar(), curve.NewRandomScalar()
			aG, bG := curve.ScalarBaseMul(a), curve.ScalarBaseMul(b)

			require.True(t, curve.ScalarBaseMul(a.Add(b)).Equals(aG.Add(bG)))
			require.True(t, curve.ScalarBaseMul(a.Sub(b)).Equals(aG.Sub(bG)))
			require.True(t, curve.ScalarMul(a, bG).Equals(curve.ScalarMul(b, aG)))
			require.True(t, curve.HashToPoint(a).Equals(aG))
			require.True(t, curve.BasePoint().Equals(curve.ScalarBaseMul(curve.ScalarFrom(1))))
		})
	}
}

func TestIdentity(t *testing.T) {
	for _, curve := range allCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			id := curve.Identity()
			g := curve.BasePoint()

			require.True(t, id.IsZero())
			require.False(t, g.IsZero())
			require.True(t, g.Add(id).Equals(g))
			require.True(t, id.Add(g).Equals(g))
			require.True(t, g.Sub(g).IsZero())
			require.True(t, g.Add(g.Negate()).Equals(id))
			require.True(t, curve.ScalarBaseMul(curve.ScalarFrom(0)).IsZero())
			require.True(t, id.ScalarMul(curve.NewRandomScalar()).IsZero())
			require.Len(t, id.Encode(), curve.CompressedPointSize())

			// n-1 times G plus G is the identity
			nMinusOne := curve.ScalarFromBigInt(new(big.Int).Sub(curve.Order(), big.NewInt(1)))
			require.True(t, curve.ScalarBaseMul(nMinusOne).Add(g).IsZero())
		})
	}
}

func TestMultiScalarMul(t *testing.T) {
	for _, curve := range allCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			s1, s2 := curve.NewRandomScalar(), curve.NewRandomScalar()
			p1 := curve.ScalarBaseMul(curve.NewRandomScalar())
			p2 := curve.ScalarBaseMul(curve.NewRandomScalar())

			got, err := curve.MultiScalarMul([]types.Scalar{s1, s2}, []types.Point{p1, p2})
			require.NoError(t, err)
			require.True(t, got.Equals(p1.ScalarMul(s1).Add(p2.ScalarMul(s2))))

			_, err = curve.MultiScalarMul([]types.Scalar{s1}, []types.Point{p1, p2})
			require.ErrorIs(t, err, types.ErrLengthMismatch)
		})
	}
}

func TestEncoding(t *testing.T) {
	for _, curve := range allCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			for i := 0; i < 16; i++ {
				s := curve.NewRandomScalar()
				p := curve.ScalarBaseMul(s)
				if p.IsZero() {
					continue
				}

				sb := s.Encode()
				require.Len(t, sb, curve.ScalarSize())
				ds, err := curve.DecodeToScalar(sb)
				require.NoError(t, err)
				require.True(t, ds.Eq(s))

				pb := p.Encode()
				require.Len(t, pb, curve.CompressedPointSize())
				dp, err := curve.DecodeToPoint(pb)
				require.NoError(t, err)
				require.True(t, dp.Equals(p))
			}

			_, err := curve.DecodeToPoint([]byte{1})
			require.Error(t, err)
			_, err = curve.DecodeToScalar([]byte{1, 2})
			require.Error(t, err)
		})
	}
}

func TestForeignTypesPanic(t *testing.T) {
	a, err := New("p256")
	require.NoError(t, err)
	b, err := New("secp256k1")
	require.NoError(t, err)

	require.Panics(t, func() {
		a.ScalarBaseMul(b.NewRandomScalar())
	})
	require.Panics(t, func() {
		a.BasePoint().Add(b.BasePoint())
	})
}

func TestIdentityEncoding(t *testing.T) {
	for _, curve := range allCurves(t) {
		t.Run(curve.Name(), func(t *testing.T) {
			enc := curve.Identity().Encode()
			d, err := curve.DecodeToPoint(enc)
			if err == nil {
				require.True(t, d.IsZero())
			}

			for i := 0; i < 16; i++ {
				p := curve.ScalarBaseMul(curve.NewRandomScalar())
				if p.IsZero() {
					continue
				}
				require.NotEqual(t, enc, p.Encode())
			}
		})
	}
}
