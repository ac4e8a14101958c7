package dleq

import (
	"github.com/athanorlabs/go-praos-vrf/group"
)

// Prove returns a proof that x is the discrete logarithm of st.A to base
// st.BaseA and of st.B to base st.BaseB. The caller is responsible for the
// statement actually holding; a proof for a false statement will not verify.
func Prove(g *group.Group, x Scalar, st *Statement) (*Proof, error) {
	if g == nil {
		return nil, errNilGroup
	}
	if x == nil {
		return nil, errNilWitness
	}
	if err := st.validate(); err != nil {
		return nil, err
	}

	curve := g.Curve()

	// commitment
	r := curve.NewRandomScalar()
	ra := curve.ScalarMul(r, st.BaseA)
	rb := curve.ScalarMul(r, st.BaseB)

	c := challenge(g, st, ra, rb)

	// z = r - c*x
	z := r.Sub(c.Mul(x))

	return &Proof{
		Ra: ra,
		Rb: rb,
		Z:  z,
	}, nil
}

// Simulate builds an accepting transcript for st from a chosen challenge c
// and response z without knowing the witness: Ra = z*a + c*A and
// Rb = z*b + c*B. The result only verifies if c happens to equal the
// Fiat-Shamir challenge of the produced commitments, so it is useful for
// reasoning about zero knowledge rather than for forging.
func Simulate(g *group.Group, st *Statement, c, z Scalar) (*Proof, error) {
	if g == nil {
		return nil, errNilGroup
	}
	if c == nil || z == nil {
		return nil, errNilWitness
	}
	if err := st.validate(); err != nil {
		return nil, err
	}

	curve := g.Curve()
	ra, err := curve.MultiScalarMul([]Scalar{z, c}, []Point{st.BaseA, st.A})
	if err != nil {
		return nil, err
	}
	rb, err := curve.MultiScalarMul([]Scalar{z, c}, []Point{st.BaseB, st.B})
	if err != nil {
		return nil, err
	}

	return &Proof{
		Ra: ra,
		Rb: rb,
		Z:  z.Copy(),
	}, nil
}
