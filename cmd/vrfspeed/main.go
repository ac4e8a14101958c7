// vrfspeed times VRF and DL-EQ operations on the supported curves and compares
// them against plain signature verification.
package main

import (
	"github.com/athanorlabs/go-praos-vrf/cmd/vrfspeed/cmd"
)

func main() {
	cmd.Execute()
}
