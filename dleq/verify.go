package dleq

import (
	"fmt"

	"github.com/athanorlabs/go-praos-vrf/group"
)

// Verify reports whether proof is valid for st. A proof that does not check
// out yields false and a nil error; an error is only returned for malformed
// input such as missing points.
func Verify(g *group.Group, st *Statement, proof *Proof) (bool, error) {
	if g == nil {
		return false, errNilGroup
	}
	if err := st.validate(); err != nil {
		return false, err
	}
	if err := proof.validate(); err != nil {
		return false, err
	}

	curve := g.Curve()
	c := challenge(g, st, proof.Ra, proof.Rb)
	weights := []Scalar{proof.Z, c}

	// Ra == z*a + c*A
	ra, err := curve.MultiScalarMul(weights, []Point{st.BaseA, st.A})
	if err != nil {
		return false, fmt.Errorf("failed to recompute Ra: %w", err)
	}
	if !ra.Equals(proof.Ra) {
		return false, nil
	}

	// Rb == z*b + c*B
	rb, err := curve.MultiScalarMul(weights, []Point{st.BaseB, st.B})
	if err != nil {
		return false, fmt.Errorf("failed to recompute Rb: %w", err)
	}
	return rb.Equals(proof.Rb), nil
}
