// Package transcript hashes ordered sequences of scalars and points into
// Fiat-Shamir challenges.
package transcript

import (
	"crypto/sha256"
	"errors"
	"hash"
	"math/big"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/athanorlabs/go-praos-vrf/types"
)

// DigestSize is the size in bytes of every transcript digest.
const DigestSize = 32

var (
	// ErrNoLists is returned by HashToCoefficients when no item lists are given.
	ErrNoLists = errors.New("at least one item list is required")
	// ErrUnknownDigest is returned by DigestByName for unsupported names.
	ErrUnknownDigest = errors.New("unknown transcript digest")
)

// Item is either a scalar or a point. Exactly one field is set.
type Item struct {
	scalar types.Scalar
	point  types.Point
}

// ScalarItem wraps a scalar for hashing.
func ScalarItem(s types.Scalar) Item {
	return Item{scalar: s}
}

// PointItem wraps a point for hashing.
func PointItem(p types.Point) Item {
	return Item{point: p}
}

// Points wraps every point in order.
func Points(ps ...types.Point) []Item {
	items := make([]Item, len(ps))
	for i, p := range ps {
		items[i] = PointItem(p)
	}
	return items
}

// Encode returns the canonical encoding of the wrapped value.
func (it Item) Encode() []byte {
	switch {
	case it.scalar != nil:
		return it.scalar.Encode()
	case it.point != nil:
		return it.point.Encode()
	default:
		panic("transcript: empty item")
	}
}

// Function maps an ordered list of items to an unreduced integer derived from
// a DigestSize-byte digest read as big endian.
type Function interface {
	Sum(items []Item) *big.Int
}

// Digest constructs the underlying hash for a Hasher.
type Digest func() hash.Hash

var (
	SHA256     Digest = sha256.New
	SHA3_256   Digest = sha3.New256
	BLAKE2b256 Digest = func() hash.Hash {
		h, err := blake2b.New256(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
)

// DigestByName returns the digest registered under name.
func DigestByName(name string) (Digest, error) {
	switch name {
	case "sha256", "":
		return SHA256, nil
	case "sha3-256":
		return SHA3_256, nil
	case "blake2b-256":
		return BLAKE2b256, nil
	default:
		return nil, ErrUnknownDigest
	}
}

// Hasher feeds the concatenated item encodings to a single digest. Every item
// type has a fixed encoded length per curve, so no length prefixes are needed.
type Hasher struct {
	digest Digest
}

var _ Function = &Hasher{}

// NewHasher returns a Hasher over the given digest, defaulting to SHA-256.
func NewHasher(d Digest) *Hasher {
	if d == nil {
		d = SHA256
	}
	return &Hasher{
		digest: d,
	}
}

func (h *Hasher) Sum(items []Item) *big.Int {
	d := h.digest()
	for _, it := range items {
		_, _ = d.Write(it.Encode())
	}
	return new(big.Int).SetBytes(d.Sum(nil))
}

// HashToCoefficients derives n coefficients from lists of items. Each list is
// hashed separately, the list digests are hashed together into the first
// coefficient and every further coefficient is the hash of the previous one,
// taken as a scalar.
// All coefficients are reduced modulo order.
func HashToCoefficients(fn Function, curve types.Curve, n int, lists [][]Item) ([]*big.Int, error) {
	if len(lists) == 0 {
		return nil, ErrNoLists
	}

	digests := make([]Item, len(lists))
	for i, l := range lists {
		digests[i] = ScalarItem(curve.ScalarFromBigInt(fn.Sum(l)))
	}

	order := curve.Order()
	coeffs := make([]*big.Int, n)
	var prev *big.Int
	for i := 0; i < n; i++ {
		if i == 0 {
			prev = fn.Sum(digests)
		} else {
			prev = fn.Sum([]Item{ScalarItem(curve.ScalarFromBigInt(prev))})
		}
		coeffs[i] = new(big.Int).Mod(prev, order)
	}
	return coeffs, nil
}
