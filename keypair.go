package vrf

import (
	"encoding/hex"
	"errors"

	"github.com/athanorlabs/go-praos-vrf/group"
	"github.com/athanorlabs/go-praos-vrf/types"
)

var (
	errNilGroup    = errors.New("group must not be nil")
	errNilKeyPair  = errors.New("key pair must not be nil or released")
	errNilPublic   = errors.New("public key must not be nil")
	errNilSeed     = errors.New("seed must not be nil")
	errNilOutput   = errors.New("output and its fields must not be nil")
	errIdentityKey = errors.New("public key must not be the identity")
)

// KeyPair holds a VRF private scalar and its public point pub = priv * G.
// The private scalar is only used by Prove and never leaves the package.
type KeyPair struct {
	priv types.Scalar
	pub  types.Point
}

// GenerateKey samples a fresh key pair on the group's curve.
func GenerateKey(g *group.Group) (*KeyPair, error) {
	if g == nil {
		return nil, errNilGroup
	}

	curve := g.Curve()
	priv := curve.NewRandomScalar()
	return &KeyPair{
		priv: priv,
		pub:  curve.ScalarBaseMul(priv),
	}, nil
}

// NewKeyPair wraps an existing private scalar.
func NewKeyPair(g *group.Group, priv types.Scalar) (*KeyPair, error) {
	if g == nil {
		return nil, errNilGroup
	}
	if priv == nil {
		return nil, errNilKeyPair
	}

	return &KeyPair{
		priv: priv.Copy(),
		pub:  g.Curve().ScalarBaseMul(priv),
	}, nil
}

// Public returns a copy of the public key.
func (kp *KeyPair) Public() types.Point {
	return kp.pub.Copy()
}

// Release drops the key material. The key pair must not be used afterwards.
func (kp *KeyPair) Release() {
	kp.priv = nil
	kp.pub = nil
}

func (kp *KeyPair) released() bool {
	return kp == nil || kp.priv == nil || kp.pub == nil
}

// String never includes the private scalar.
func (kp *KeyPair) String() string {
	if kp.released() {
		return "KeyPair{released}"
	}
	return "KeyPair{pub: " + hex.EncodeToString(kp.pub.Encode()) + "}"
}
