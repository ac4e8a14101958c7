// Package group bundles a curve with a transcript function into the immutable
// configuration shared by the DL-EQ and VRF engines.
package group

import (
	"errors"
	"math/big"

	"github.com/athanorlabs/go-praos-vrf/transcript"
	"github.com/athanorlabs/go-praos-vrf/types"
)

var errNilCurve = errors.New("curve must not be nil")

// Group is constructed once at start-up and only read afterwards, so a single
// value may be shared between goroutines.
type Group struct {
	curve      types.Curve
	order      *big.Int
	generator  types.Point
	transcript transcript.Function
}

// Option configures a Group.
type Option func(*Group)

// WithTranscript overrides the default SHA-256 transcript function.
func WithTranscript(fn transcript.Function) Option {
	return func(g *Group) {
		if fn != nil {
			g.transcript = fn
		}
	}
}

// New returns the group descriptor for curve.
func New(curve types.Curve, opts ...Option) (*Group, error) {
	if curve == nil {
		return nil, errNilCurve
	}

	g := &Group{
		curve:      curve,
		order:      curve.Order(),
		generator:  curve.BasePoint(),
		transcript: transcript.NewHasher(transcript.SHA256),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Group) Curve() types.Curve {
	return g.curve
}

// Order returns a copy of the group order.
func (g *Group) Order() *big.Int {
	return new(big.Int).Set(g.order)
}

// Generator returns a copy of the base point.
func (g *Group) Generator() types.Point {
	return g.generator.Copy()
}

// Hash returns the unreduced transcript digest of items.
func (g *Group) Hash(items ...transcript.Item) *big.Int {
	return g.transcript.Sum(items)
}

// HashToScalar returns the transcript digest of items reduced modulo the
// group order.
func (g *Group) HashToScalar(items ...transcript.Item) types.Scalar {
	return g.curve.ScalarFromBigInt(g.Hash(items...))
}

// HashToPoint maps s to s * G.
func (g *Group) HashToPoint(s types.Scalar) types.Point {
	return g.curve.HashToPoint(s)
}
