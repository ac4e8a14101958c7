package cmd

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/athanorlabs/go-praos-vrf/dleq"
)

func init() {
	RootCmd.AddCommand(dleqCmd)
}

var dleqCmd = &cobra.Command{
	Use:   "dleq",
	Short: "Time DL-EQ proof generation and verification",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := reps()
		if err != nil {
			return err
		}
		return runDLEQ(n)
	},
}

func runDLEQ(n int) error {
	g, err := newGroup()
	if err != nil {
		return err
	}
	curve := g.Curve()
	glog.Infof("DL-EQ on %s", curve.Name())

	x := curve.NewRandomScalar()
	a := curve.ScalarBaseMul(curve.NewRandomScalar())
	b := curve.ScalarBaseMul(curve.NewRandomScalar())
	st := &dleq.Statement{
		BaseA: a,
		A:     a.ScalarMul(x),
		BaseB: b,
		B:     b.ScalarMul(x),
	}

	var proof *dleq.Proof
	if _, err := measure("dleq prove", n, func() error {
		proof, err = dleq.Prove(g, x, st)
		return err
	}); err != nil {
		return err
	}

	_, err = measure("dleq verify", n, func() error {
		ok, err := dleq.Verify(g, st, proof)
		if err != nil {
			return err
		}
		if !ok {
			return errVerifyFailed
		}
		return nil
	})
	if err != nil {
		glog.Errorf("DL-EQ FAILED: %v", err)
		return err
	}

	enc, err := proof.Encode()
	if err != nil {
		return err
	}
	glog.Infof("DL-EQ verified, proof is %d bytes", len(enc))
	return nil
}
