package transcript

import (
	"math/big"

	"github.com/gtank/merlin"
)

var (
	labelScalar    = []byte("scalar")
	labelPoint     = []byte("point")
	labelChallenge = []byte("challenge")
)

// Merlin is a Function backed by a STROBE transcript. Every item is appended
// under a label naming its type, so the framing is explicit rather than
// relying on fixed encoding lengths.
type Merlin struct {
	label string
}

var _ Function = &Merlin{}

// NewMerlin returns a Merlin transcript function with the given domain label.
func NewMerlin(label string) *Merlin {
	return &Merlin{
		label: label,
	}
}

func (m *Merlin) Sum(items []Item) *big.Int {
	t := merlin.NewTranscript(m.label)
	for _, it := range items {
		label := labelPoint
		if it.scalar != nil {
			label = labelScalar
		}
		t.AppendMessage(label, it.Encode())
	}
	return new(big.Int).SetBytes(t.ExtractBytes(labelChallenge, DigestSize))
}
