package dleq

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/athanorlabs/go-praos-vrf/types"
)

var (
	// ErrInputBytesTooShort is returned when decoding truncated input.
	ErrInputBytesTooShort = errors.New("input bytes too short")
	// ErrTrailingBytes is returned when the input is longer than one proof.
	ErrTrailingBytes = errors.New("unexpected trailing bytes")
)

// EncodedSize returns the length of an encoded proof on curve.
func EncodedSize(curve types.Curve) int {
	return 2*curve.CompressedPointSize() + curve.ScalarSize()
}

// Encode serializes the proof as Ra || Rb || z.
func (p *Proof) Encode() ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	b := append(p.Ra.Encode(), p.Rb.Encode()...)
	return append(b, p.Z.Encode()...), nil
}

// DecodeProof decodes a proof for the given curve. The curve must match the
// one the proof was created on.
func DecodeProof(curve types.Curve, in []byte) (*Proof, error) {
	if len(in) < EncodedSize(curve) {
		return nil, ErrInputBytesTooShort
	}
	if len(in) > EncodedSize(curve) {
		return nil, ErrTrailingBytes
	}

	return decodeProof(curve, bytes.NewBuffer(in))
}

func decodeProof(curve types.Curve, r *bytes.Buffer) (*Proof, error) {
	pointLen := curve.CompressedPointSize()
	if r.Len() < EncodedSize(curve) {
		return nil, ErrInputBytesTooShort
	}

	p := new(Proof)

	var err error
	p.Ra, err = curve.DecodeToPoint(r.Next(pointLen))
	if err != nil {
		return nil, fmt.Errorf("failed to decode Ra: %w", err)
	}

	p.Rb, err = curve.DecodeToPoint(r.Next(pointLen))
	if err != nil {
		return nil, fmt.Errorf("failed to decode Rb: %w", err)
	}

	p.Z, err = curve.DecodeToScalar(r.Next(curve.ScalarSize()))
	if err != nil {
		return nil, fmt.Errorf("failed to decode z: %w", err)
	}

	return p, nil
}

// DecodeFrom reads one proof from the front of r, for embedding proofs in
// larger encodings.
func DecodeFrom(curve types.Curve, r *bytes.Buffer) (*Proof, error) {
	return decodeProof(curve, r)
}
