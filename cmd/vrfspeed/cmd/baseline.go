package cmd

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/ed25519"
)

const baselineMessage = "vrfspeed baseline message"

// verifier checks one fixed signature.
type verifier func() bool

var baselines = map[string]func() (verifier, error){
	"p256-ecdsa":      p256Baseline,
	"secp256k1-ecdsa": secp256k1Baseline,
	"ed25519":         ed25519Baseline,
}

func init() {
	RootCmd.AddCommand(baselineCmd)

	baselineCmd.Flags().String("baseline", "p256-ecdsa", "Signature scheme: p256-ecdsa, secp256k1-ecdsa or ed25519")
	if err := viper.BindPFlag("baseline", baselineCmd.Flags().Lookup("baseline")); err != nil {
		glog.Exitf("%v", err)
	}
}

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Time signature verification for comparison",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := reps()
		if err != nil {
			return err
		}
		return runBaseline(viper.GetString("baseline"), n)
	},
}

func runBaseline(name string, n int) error {
	newVerifier, ok := baselines[name]
	if !ok {
		return fmt.Errorf("unknown baseline %q", name)
	}

	verify, err := newVerifier()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	_, err = measure(name+" verify", n, func() error {
		if !verify() {
			return errVerifyFailed
		}
		return nil
	})
	return err
}

func p256Baseline() (verifier, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256([]byte(baselineMessage))
	sig, err := ecdsa.SignASN1(rand.Reader, priv, hash[:])
	if err != nil {
		return nil, err
	}

	return func() bool {
		return ecdsa.VerifyASN1(&priv.PublicKey, hash[:], sig)
	}, nil
}

func secp256k1Baseline() (verifier, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256([]byte(baselineMessage))
	sig := btcecdsa.Sign(priv, hash[:])
	pub := priv.PubKey()

	return func() bool {
		return sig.Verify(hash[:], pub)
	}, nil
}

func ed25519Baseline() (verifier, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	sig := ed25519.Sign(priv, []byte(baselineMessage))
	return func() bool {
		return ed25519.Verify(pub, []byte(baselineMessage), sig)
	}, nil
}
