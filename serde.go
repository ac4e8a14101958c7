package vrf

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-praos-vrf/dleq"
	"github.com/athanorlabs/go-praos-vrf/transcript"
	"github.com/athanorlabs/go-praos-vrf/types"
)

var errRandomnessTooLarge = errors.New("randomness exceeds digest size")

// EncodedSize returns the length of an encoded output on curve.
func EncodedSize(curve types.Curve) int {
	return transcript.DigestSize + curve.CompressedPointSize() + dleq.EncodedSize(curve)
}

// Encode serializes the output as randomness (32 bytes, big endian) || u || proof.
func (o *Output) Encode() ([]byte, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Randomness.Sign() < 0 || o.Randomness.BitLen() > 8*transcript.DigestSize {
		return nil, errRandomnessTooLarge
	}

	proof, err := o.Proof.Encode()
	if err != nil {
		return nil, err
	}

	b := o.Randomness.FillBytes(make([]byte, transcript.DigestSize))
	b = append(b, o.U.Encode()...)
	return append(b, proof...), nil
}

// DecodeOutput decodes an output for the given curve.
func DecodeOutput(curve types.Curve, in []byte) (*Output, error) {
	if len(in) < EncodedSize(curve) {
		return nil, dleq.ErrInputBytesTooShort
	}
	if len(in) > EncodedSize(curve) {
		return nil, dleq.ErrTrailingBytes
	}

	r := bytes.NewBuffer(in)
	o := new(Output)
	o.Randomness = new(big.Int).SetBytes(r.Next(transcript.DigestSize))

	var err error
	o.U, err = curve.DecodeToPoint(r.Next(curve.CompressedPointSize()))
	if err != nil {
		return nil, fmt.Errorf("failed to decode u: %w", err)
	}

	o.Proof, err = dleq.DecodeFrom(curve, r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode proof: %w", err)
	}

	return o, nil
}
