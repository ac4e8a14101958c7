package cmd

import (
	"errors"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	vrf "github.com/athanorlabs/go-praos-vrf"
)

var errVerifyFailed = errors.New("verification failed")

func init() {
	RootCmd.AddCommand(vrfCmd)
}

var vrfCmd = &cobra.Command{
	Use:   "vrf",
	Short: "Time VRF evaluation and verification",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := reps()
		if err != nil {
			return err
		}
		return runVRF(n)
	},
}

func runVRF(n int) error {
	g, err := newGroup()
	if err != nil {
		return err
	}
	curve := g.Curve()
	glog.Infof("VRF on %s", curve.Name())

	kp, err := vrf.GenerateKey(g)
	if err != nil {
		return err
	}
	defer kp.Release()
	pub := kp.Public()

	seed := curve.NewRandomScalar()
	var out *vrf.Output
	if _, err := measure("vrf prove", 1, func() error {
		out, err = vrf.Prove(g, seed, kp)
		return err
	}); err != nil {
		return err
	}

	_, err = measure("vrf verify", n, func() error {
		ok, err := vrf.Verify(g, seed, out, pub)
		if err != nil {
			return err
		}
		if !ok {
			return errVerifyFailed
		}
		return nil
	})
	if err != nil {
		glog.Errorf("VRF FAILED: %v", err)
		return err
	}

	glog.Infof("VRF verified, randomness %x", out.Randomness)
	return nil
}
