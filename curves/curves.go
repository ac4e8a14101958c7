// Package curves maps configuration names to curve backends.
package curves

import (
	"fmt"
	"sort"

	"github.com/athanorlabs/go-praos-vrf/ed25519"
	"github.com/athanorlabs/go-praos-vrf/p256"
	"github.com/athanorlabs/go-praos-vrf/ristretto255"
	"github.com/athanorlabs/go-praos-vrf/secp256k1"
	"github.com/athanorlabs/go-praos-vrf/types"
)

// Default is the curve used when none is configured.
const Default = "p256"

var registry = map[string]func() types.Curve{
	"p256":         p256.NewCurve,
	"secp256k1":    secp256k1.NewCurve,
	"ed25519":      ed25519.NewCurve,
	"ristretto255": ristretto255.NewCurve,
}

// New returns the curve registered under name.
func New(name string) (types.Curve, error) {
	if name == "" {
		name = Default
	}

	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown curve %q (have %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
