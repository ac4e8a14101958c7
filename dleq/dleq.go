// Package dleq implements a non-interactive zero-knowledge proof that two
// points share the same discrete logarithm with respect to two bases:
//
//	A = x*a and B = x*b
//
// The challenge is derived with the Fiat-Shamir transform over the transcript
// (a, A, b, B, Ra, Rb).
package dleq

import (
	"errors"

	"github.com/athanorlabs/go-praos-vrf/group"
	"github.com/athanorlabs/go-praos-vrf/transcript"
	"github.com/athanorlabs/go-praos-vrf/types"
)

type Point = types.Point
type Scalar = types.Scalar

var (
	errNilGroup     = errors.New("group must not be nil")
	errNilWitness   = errors.New("witness must not be nil")
	errNilStatement = errors.New("statement points must not be nil")
	errNilProof     = errors.New("proof and its fields must not be nil")
)

// Statement names the public values of the relation A = x*BaseA, B = x*BaseB.
// A proof only has meaning together with the exact statement it was created
// for.
type Statement struct {
	BaseA, A Point
	BaseB, B Point
}

func (st *Statement) validate() error {
	if st == nil || st.BaseA == nil || st.A == nil || st.BaseB == nil || st.B == nil {
		return errNilStatement
	}
	return nil
}

// Proof is the (commitment, response) part of the sigma protocol transcript.
type Proof struct {
	Ra, Rb Point
	Z      Scalar
}

func (p *Proof) validate() error {
	if p == nil || p.Ra == nil || p.Rb == nil || p.Z == nil {
		return errNilProof
	}
	return nil
}

// challenge computes c = H(a, A, b, B, Ra, Rb) mod order.
func challenge(g *group.Group, st *Statement, ra, rb Point) Scalar {
	return g.HashToScalar(transcript.Points(st.BaseA, st.A, st.BaseB, st.B, ra, rb)...)
}
