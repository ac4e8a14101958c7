package vrf

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-praos-vrf/curves"
	"github.com/athanorlabs/go-praos-vrf/dleq"
	"github.com/athanorlabs/go-praos-vrf/group"
	"github.com/athanorlabs/go-praos-vrf/internal/ec29"
	"github.com/athanorlabs/go-praos-vrf/transcript"
	"github.com/athanorlabs/go-praos-vrf/types"
)

func testGroups(t testing.TB) []*group.Group {
	var groups []*group.Group
	for _, name := range curves.Names() {
		curve, err := curves.New(name)
		require.NoError(t, err)
		g, err := group.New(curve)
		require.NoError(t, err)
		groups = append(groups, g)
	}
	return groups
}

func TestProveAndVerify(t *testing.T) {
	for _, g := range testGroups(t) {
		t.Run(g.Curve().Name(), func(t *testing.T) {
			kp, err := GenerateKey(g)
			require.NoError(t, err)
			seed := g.Curve().NewRandomScalar()

			out, err := Prove(g, seed, kp)
			require.NoError(t, err)

			ok, err := Verify(g, seed, out, kp.Public())
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestProve_Deterministic(t *testing.T) {
	for _, g := range testGroups(t) {
		t.Run(g.Curve().Name(), func(t *testing.T) {
			kp, err := GenerateKey(g)
			require.NoError(t, err)
			seed := g.Curve().NewRandomScalar()

			out1, err := Prove(g, seed, kp)
			require.NoError(t, err)
			out2, err := Prove(g, seed, kp)
			require.NoError(t, err)

			require.Equal(t, 0, out1.Randomness.Cmp(out2.Randomness))
			require.True(t, out1.U.Equals(out2.U))
			// the proofs are randomized
			require.False(t, out1.Proof.Z.Eq(out2.Proof.Z))
		})
	}
}

func TestProve_UIsPrivTimesSeedBase(t *testing.T) {
	g := testGroups(t)[0]
	curve := g.Curve()
	priv := curve.NewRandomScalar()
	kp, err := NewKeyPair(g, priv)
	require.NoError(t, err)
	require.True(t, kp.Public().Equals(curve.ScalarBaseMul(priv)))

	seed := curve.NewRandomScalar()
	out, err := Prove(g, seed, kp)
	require.NoError(t, err)

	h := curve.ScalarBaseMul(g.HashToScalar(transcript.ScalarItem(seed)))
	require.True(t, out.U.Equals(h.ScalarMul(priv)))

	want := g.Hash(transcript.Points(curve.ScalarBaseMul(seed), out.U)...)
	require.Equal(t, 0, want.Cmp(out.Randomness))
}

func TestProve_DifferentSeedsAndKeys(t *testing.T) {
	g := testGroups(t)[0]
	curve := g.Curve()
	kp1, err := GenerateKey(g)
	require.NoError(t, err)
	kp2, err := GenerateKey(g)
	require.NoError(t, err)
	seed1, seed2 := curve.NewRandomScalar(), curve.NewRandomScalar()

	a, err := Prove(g, seed1, kp1)
	require.NoError(t, err)
	b, err := Prove(g, seed2, kp1)
	require.NoError(t, err)
	c, err := Prove(g, seed1, kp2)
	require.NoError(t, err)

	require.NotEqual(t, 0, a.Randomness.Cmp(b.Randomness))
	require.NotEqual(t, 0, a.Randomness.Cmp(c.Randomness))
}

func TestVerify_Rejects(t *testing.T) {
	for _, g := range testGroups(t) {
		t.Run(g.Curve().Name(), func(t *testing.T) {
			curve := g.Curve()
			kp, err := GenerateKey(g)
			require.NoError(t, err)
			other, err := GenerateKey(g)
			require.NoError(t, err)
			seed := curve.NewRandomScalar()

			out, err := Prove(g, seed, kp)
			require.NoError(t, err)

			for _, tc := range []struct {
				desc string
				seed types.Scalar
				out  *Output
				pub  types.Point
			}{
				{
					desc: "wrong public key",
					seed: seed,
					out:  out,
					pub:  other.Public(),
				},
				{
					desc: "wrong seed",
					seed: seed.Add(curve.ScalarFrom(1)),
					out:  out,
					pub:  kp.Public(),
				},
				{
					desc: "wrong randomness",
					seed: seed,
					out: &Output{
						Randomness: new(big.Int).Add(out.Randomness, big.NewInt(1)),
						U:          out.U,
						Proof:      out.Proof,
					},
					pub: kp.Public(),
				},
				{
					desc: "wrong u",
					seed: seed,
					out: &Output{
						Randomness: out.Randomness,
						U:          out.U.Add(curve.BasePoint()),
						Proof:      out.Proof,
					},
					pub: kp.Public(),
				},
				{
					desc: "proof from another evaluation",
					seed: seed,
					out: func() *Output {
						o, err := Prove(g, seed, other)
						require.NoError(t, err)
						return &Output{Randomness: out.Randomness, U: out.U, Proof: o.Proof}
					}(),
					pub: kp.Public(),
				},
			} {
				t.Run(tc.desc, func(t *testing.T) {
					ok, err := Verify(g, tc.seed, tc.out, tc.pub)
					require.NoError(t, err)
					require.False(t, ok)
				})
			}
		})
	}
}

func TestVerify_ForgedUWithMatchingRandomness(t *testing.T) {
	g := testGroups(t)[0]
	curve := g.Curve()
	kp, err := GenerateKey(g)
	require.NoError(t, err)
	seed := curve.NewRandomScalar()
	out, err := Prove(g, seed, kp)
	require.NoError(t, err)

	// a consistent randomness for a forged u does not help without a proof
	forgedU := out.U.Add(curve.BasePoint())
	forged := &Output{
		Randomness: g.Hash(transcript.Points(curve.ScalarBaseMul(seed), forgedU)...),
		U:          forgedU,
		Proof:      out.Proof,
	}
	ok, err := Verify(g, seed, forged, kp.Public())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUsageErrors(t *testing.T) {
	g := testGroups(t)[0]
	curve := g.Curve()
	kp, err := GenerateKey(g)
	require.NoError(t, err)
	seed := curve.NewRandomScalar()
	out, err := Prove(g, seed, kp)
	require.NoError(t, err)

	_, err = GenerateKey(nil)
	require.Error(t, err)
	_, err = Prove(nil, seed, kp)
	require.Error(t, err)
	_, err = Prove(g, nil, kp)
	require.Error(t, err)
	_, err = Prove(g, seed, nil)
	require.Error(t, err)

	_, err = Verify(g, nil, out, kp.Public())
	require.Error(t, err)
	_, err = Verify(g, seed, nil, kp.Public())
	require.Error(t, err)
	_, err = Verify(g, seed, out, nil)
	require.Error(t, err)
	_, err = Verify(g, seed, out, curve.Identity())
	require.Error(t, err)
	_, err = Verify(g, seed, &Output{U: out.U, Proof: out.Proof}, kp.Public())
	require.Error(t, err)
}

func TestKeyPair_Release(t *testing.T) {
	g := testGroups(t)[0]
	kp, err := GenerateKey(g)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(kp.String(), "KeyPair{pub: "))

	kp.Release()
	require.Equal(t, "KeyPair{released}", kp.String())

	_, err = Prove(g, g.Curve().NewRandomScalar(), kp)
	require.Error(t, err)
}

func TestKeyPair_StringOmitsPrivate(t *testing.T) {
	g := testGroups(t)[0]
	priv := g.Curve().NewRandomScalar()
	kp, err := NewKeyPair(g, priv)
	require.NoError(t, err)
	require.NotContains(t, kp.String(), hexOf(priv))
}

func TestProveAndVerify_ToyCurve(t *testing.T) {
	g, err := group.New(ec29.NewCurve())
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		kp, err := GenerateKey(g)
		require.NoError(t, err)
		if kp.Public().IsZero() {
			continue
		}
		seed := g.Curve().NewRandomScalar()
		out, err := Prove(g, seed, kp)
		require.NoError(t, err)
		ok, err := Verify(g, seed, out, kp.Public())
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestProveAndVerify_AlternativeTranscripts(t *testing.T) {
	curve, err := curves.New("ristretto255")
	require.NoError(t, err)

	for _, fn := range []transcript.Function{
		transcript.NewHasher(transcript.SHA3_256),
		transcript.NewHasher(transcript.BLAKE2b256),
		transcript.NewMerlin("praos-vrf"),
	} {
		g, err := group.New(curve, group.WithTranscript(fn))
		require.NoError(t, err)

		kp, err := GenerateKey(g)
		require.NoError(t, err)
		seed := curve.NewRandomScalar()
		out, err := Prove(g, seed, kp)
		require.NoError(t, err)
		ok, err := Verify(g, seed, out, kp.Public())
		require.NoError(t, err)
		require.True(t, ok)

		// a verifier configured with a different transcript rejects
		plain, err := group.New(curve)
		require.NoError(t, err)
		ok, err = Verify(plain, seed, out, kp.Public())
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestOutput_Serde(t *testing.T) {
	for _, g := range testGroups(t) {
		t.Run(g.Curve().Name(), func(t *testing.T) {
			curve := g.Curve()
			kp, err := GenerateKey(g)
			require.NoError(t, err)
			seed := curve.NewRandomScalar()
			out, err := Prove(g, seed, kp)
			require.NoError(t, err)

			ser, err := out.Encode()
			require.NoError(t, err)
			require.Equal(t, EncodedSize(curve), len(ser))

			deser, err := DecodeOutput(curve, ser)
			require.NoError(t, err)
			require.Equal(t, 0, out.Randomness.Cmp(deser.Randomness))
			require.True(t, out.U.Equals(deser.U))

			ok, err := Verify(g, seed, deser, kp.Public())
			require.NoError(t, err)
			require.True(t, ok)

			_, err = DecodeOutput(curve, ser[:len(ser)-1])
			require.ErrorIs(t, err, dleq.ErrInputBytesTooShort)
			_, err = DecodeOutput(curve, append(ser, 0))
			require.ErrorIs(t, err, dleq.ErrTrailingBytes)
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	for _, g := range testGroups(b) {
		b.Run(g.Curve().Name(), func(b *testing.B) {
			kp, err := GenerateKey(g)
			require.NoError(b, err)
			seed := g.Curve().NewRandomScalar()
			out, err := Prove(g, seed, kp)
			require.NoError(b, err)
			pub := kp.Public()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := Verify(g, seed, out, pub)
				require.NoError(b, err)
				require.True(b, ok)
			}
		})
	}
}

func hexOf(s types.Scalar) string {
	return hex.EncodeToString(s.Encode())
}

func TestDecodeOutput_RejectsTorsionU(t *testing.T) {
	curve, err := curves.New("ed25519")
	require.NoError(t, err)
	g, err := group.New(curve)
	require.NoError(t, err)

	kp, err := GenerateKey(g)
	require.NoError(t, err)
	seed := curve.NewRandomScalar()
	out, err := Prove(g, seed, kp)
	require.NoError(t, err)
	ser, err := out.Encode()
	require.NoError(t, err)

	// a point of order 8
	t8Bytes, err := hex.DecodeString("c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac037a")
	require.NoError(t, err)
	t8, err := new(edwards25519.Point).SetBytes(t8Bytes)
	require.NoError(t, err)

	uOff := transcript.DigestSize
	uLen := curve.CompressedPointSize()
	u, err := new(edwards25519.Point).SetBytes(ser[uOff : uOff+uLen])
	require.NoError(t, err)
	forgedU := new(edwards25519.Point).Add(u, t8).Bytes()

	forged := append([]byte(nil), ser...)
	copy(forged[uOff:], forgedU)
	_, err = DecodeOutput(curve, forged)
	require.Error(t, err)

	// the same shift applied to the commitment Ra
	raOff := uOff + uLen
	ra, err := new(edwards25519.Point).SetBytes(ser[raOff : raOff+uLen])
	require.NoError(t, err)
	forged = append([]byte(nil), ser...)
	copy(forged[raOff:], new(edwards25519.Point).Add(ra, t8).Bytes())
	_, err = DecodeOutput(curve, forged)
	require.Error(t, err)

	_, err = curve.DecodeToPoint(new(edwards25519.Point).Add(u, t8).Bytes())
	require.Error(t, err)

	ok, err := Verify(g, seed, out, kp.Public())
	require.NoError(t, err)
	require.True(t, ok)
}
