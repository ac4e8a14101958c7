// Package vrf implements a verifiable random function in the style of
// Ouroboros Praos on top of a discrete-log equality proof.
//
// For a seed s and key pair (k, K = k*G):
//
//	H = G * H(s)        (public, derivable without k)
//	u = k * H
//	y = H(s*G, u)       (the VRF output)
//	proof: log_H(u) == log_G(K)
package vrf

import (
	"math/big"

	"github.com/athanorlabs/go-praos-vrf/dleq"
	"github.com/athanorlabs/go-praos-vrf/group"
	"github.com/athanorlabs/go-praos-vrf/transcript"
	"github.com/athanorlabs/go-praos-vrf/types"
)

// Output is the result of evaluating the VRF on a seed.
type Output struct {
	// Randomness is the unreduced digest H(s*G, u).
	Randomness *big.Int
	// U is the intermediate point k * H.
	U     types.Point
	Proof *dleq.Proof
}

func (o *Output) validate() error {
	if o == nil || o.Randomness == nil || o.U == nil || o.Proof == nil {
		return errNilOutput
	}
	return nil
}

// seedBase returns H = G * H(seed), the DL-EQ base the key is applied to.
func seedBase(g *group.Group, seed types.Scalar) types.Point {
	return g.HashToPoint(g.HashToScalar(transcript.ScalarItem(seed)))
}

// randomness returns H(seed*G, u). The seed point only separates outputs of
// different seeds; it is not the DL-EQ base.
func randomness(g *group.Group, seed types.Scalar, u types.Point) *big.Int {
	seedPoint := g.HashToPoint(seed)
	return g.Hash(transcript.Points(seedPoint, u)...)
}

// Prove evaluates the VRF on seed. Randomness and U depend only on seed and
// the private key; the proof is freshly randomized on every call.
func Prove(g *group.Group, seed types.Scalar, kp *KeyPair) (*Output, error) {
	if g == nil {
		return nil, errNilGroup
	}
	if seed == nil {
		return nil, errNilSeed
	}
	if kp.released() {
		return nil, errNilKeyPair
	}

	h := seedBase(g, seed)
	u := g.Curve().ScalarMul(kp.priv, h)

	proof, err := dleq.Prove(g, kp.priv, &dleq.Statement{
		BaseA: h,
		A:     u,
		BaseB: g.Generator(),
		B:     kp.pub,
	})
	if err != nil {
		return nil, err
	}

	return &Output{
		Randomness: randomness(g, seed, u),
		U:          u,
		Proof:      proof,
	}, nil
}

// Verify reports whether out is the VRF evaluation of seed under pub. A
// mismatch yields false and a nil error; errors are reserved for malformed
// input.
func Verify(g *group.Group, seed types.Scalar, out *Output, pub types.Point) (bool, error) {
	if g == nil {
		return false, errNilGroup
	}
	if seed == nil {
		return false, errNilSeed
	}
	if pub == nil {
		return false, errNilPublic
	}
	if pub.IsZero() {
		return false, errIdentityKey
	}
	if err := out.validate(); err != nil {
		return false, err
	}

	if randomness(g, seed, out.U).Cmp(out.Randomness) != 0 {
		return false, nil
	}

	return dleq.Verify(g, &dleq.Statement{
		BaseA: seedBase(g, seed),
		A:     out.U,
		BaseB: g.Generator(),
		B:     pub,
	}, out.Proof)
}
