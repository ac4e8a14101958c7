package cmd

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	vrf "github.com/athanorlabs/go-praos-vrf"
	"github.com/athanorlabs/go-praos-vrf/dleq"
	"github.com/athanorlabs/go-praos-vrf/group"
)

func init() {
	RootCmd.AddCommand(selftestCmd)
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the reference accept and reject scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGroup()
		if err != nil {
			return err
		}
		return runSelftest(g)
	},
}

type scenario struct {
	name string
	want bool
	run  func(g *group.Group) (bool, error)
}

var scenarios = []scenario{
	{name: "dleq x=7", want: true, run: dleqScenario(7)},
	{name: "dleq wrong exponent", want: false, run: dleqScenario(6)},
	{name: "vrf", want: true, run: vrfScenario(false)},
	{name: "vrf wrong key", want: false, run: vrfScenario(true)},
}

// dleqScenario proves log_a(7a) == log_b(7b) with witness k.
func dleqScenario(k uint32) func(*group.Group) (bool, error) {
	return func(g *group.Group) (bool, error) {
		curve := g.Curve()
		x := curve.ScalarFrom(7)
		a := curve.ScalarBaseMul(curve.NewRandomScalar())
		b := curve.ScalarBaseMul(curve.NewRandomScalar())
		st := &dleq.Statement{
			BaseA: a,
			A:     a.ScalarMul(x),
			BaseB: b,
			B:     b.ScalarMul(x),
		}

		proof, err := dleq.Prove(g, curve.ScalarFrom(k), st)
		if err != nil {
			return false, err
		}
		return dleq.Verify(g, st, proof)
	}
}

func vrfScenario(wrongKey bool) func(*group.Group) (bool, error) {
	return func(g *group.Group) (bool, error) {
		kp, err := vrf.GenerateKey(g)
		if err != nil {
			return false, err
		}
		defer kp.Release()

		seed := g.Curve().NewRandomScalar()
		out, err := vrf.Prove(g, seed, kp)
		if err != nil {
			return false, err
		}

		pub := kp.Public()
		if wrongKey {
			other, err := vrf.GenerateKey(g)
			if err != nil {
				return false, err
			}
			pub = other.Public()
			other.Release()
		}
		return vrf.Verify(g, seed, out, pub)
	}
}

func runSelftest(g *group.Group) error {
	var failed int
	for _, sc := range scenarios {
		got, err := sc.run(g)
		switch {
		case err != nil:
			glog.Errorf("%s: %v", sc.name, err)
			failed++
		case got != sc.want:
			glog.Errorf("%s: FAILED, verified=%v", sc.name, got)
			failed++
		default:
			glog.Infof("%s: ok, verified=%v", sc.name, got)
		}
	}

	if failed != 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	return nil
}
