package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/athanorlabs/go-praos-vrf/curves"
	"github.com/athanorlabs/go-praos-vrf/group"
	"github.com/athanorlabs/go-praos-vrf/transcript"
)

const (
	envPrefix   = "VRFSPEED"
	merlinHash  = "merlin"
	merlinLabel = "vrfspeed"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "vrfspeed",
	Short: "Time VRF and DL-EQ operations",
	Long: `vrfspeed generates a key, evaluates the VRF once and verifies the
result repeatedly, reporting wall time and heap allocations. The baseline
subcommand measures signature verification for comparison.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	// Silence "logging before flag.Parse"; cobra parses the real arguments.
	if err := flag.CommandLine.Parse([]string{}); err != nil {
		glog.Exitf("flag.Parse(): %v", err)
	}
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Exitf("flag.Set(logtostderr): %v", err)
	}

	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// glog registers its flags on the standard flag set.
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vrfspeed.yaml)")

	RootCmd.PersistentFlags().String("curve", curves.Default, fmt.Sprintf("Curve to run on, one of %v", curves.Names()))
	RootCmd.PersistentFlags().String("hash", "sha256", "Transcript hash: sha256, sha3-256, blake2b-256 or merlin")
	RootCmd.PersistentFlags().Int("reps", 1000, "Number of verifications to time")
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		glog.Exitf("%v", err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			glog.Exitf("Failed reading config file: %v: %v", viper.ConfigFileUsed(), err)
		}
		return
	}

	viper.SetConfigName(".vrfspeed")
	viper.AddConfigPath("$HOME")
	if err := viper.ReadInConfig(); err == nil {
		glog.V(1).Infof("Using config file: %v", viper.ConfigFileUsed())
	}
}

// transcriptFunction maps a --hash value to a transcript function.
func transcriptFunction(name string) (transcript.Function, error) {
	if name == merlinHash {
		return transcript.NewMerlin(merlinLabel), nil
	}

	d, err := transcript.DigestByName(name)
	if err != nil {
		return nil, err
	}
	return transcript.NewHasher(d), nil
}

// newGroup builds the group selected by --curve and --hash.
func newGroup() (*group.Group, error) {
	curve, err := curves.New(viper.GetString("curve"))
	if err != nil {
		return nil, err
	}

	fn, err := transcriptFunction(viper.GetString("hash"))
	if err != nil {
		return nil, err
	}

	return group.New(curve, group.WithTranscript(fn))
}

func reps() (int, error) {
	n := viper.GetInt("reps")
	if n <= 0 {
		return 0, fmt.Errorf("--reps must be positive, got %d", n)
	}
	return n, nil
}
