package main

import (
	"strings"
	"testing"

	"github.com/signalsfoundry/fixedwing-dynamics/core"
)

func TestPrintParameters_Defaults(t *testing.T) {
	var b strings.Builder
	printParameters(&b, core.NewVehicleParameters())
	out := b.String()

	for _, want := range []string{
		"mass          2.6500 kg",
		"wing_span     2.5900 m",
		"throttle      channel 5",
		"aileron_left  channel 4",
		"alpha range   [-0.27, 0.27] rad",
		"c_thrust",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}
