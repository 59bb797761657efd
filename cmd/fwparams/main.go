package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/signalsfoundry/fixedwing-dynamics/core"
	"github.com/signalsfoundry/fixedwing-dynamics/internal/logging"
)

func main() {
	aeroPath := flag.String(
		"aero",
		"",
		"path to a YAML document with aerodynamic coefficient overrides",
	)
	vehiclePath := flag.String(
		"vehicle",
		"",
		"path to a YAML document with rigid-body and actuator overrides",
	)
	flag.Parse()

	log := logging.NewFromEnv()

	params := core.NewVehicleParameters()

	if *vehiclePath != "" {
		if err := params.LoadVehicleParameters(*vehiclePath); err != nil {
			log.Error("vehicle parameter load failed",
				logging.String("path", *vehiclePath),
				logging.Err(err),
			)
			os.Exit(1)
		}
		log.Info("vehicle parameters loaded", logging.String("path", *vehiclePath))
	}

	if *aeroPath != "" {
		if err := params.LoadAerodynamicParameters(*aeroPath); err != nil {
			log.Error("aerodynamic parameter load failed",
				logging.String("path", *aeroPath),
				logging.Err(err),
			)
			os.Exit(1)
		}
		log.Info("aerodynamic parameters loaded", logging.String("path", *aeroPath))
	}

	printParameters(os.Stdout, params)
}

// printParameters dumps the merged parameter set in a stable order so
// two runs can be diffed against each other.
func printParameters(w io.Writer, v *core.VehicleParameters) {
	fmt.Fprintf(w, "Rigid body:\n")
	fmt.Fprintf(w, "  mass          %.4f kg\n", v.RigidBody.MassKg)
	fmt.Fprintf(w, "  wing_span     %.4f m\n", v.RigidBody.WingSpanM)
	fmt.Fprintf(w, "  wing_surface  %.4f m^2\n", v.RigidBody.WingSurfaceM2)
	fmt.Fprintf(w, "  chord_length  %.4f m\n", v.RigidBody.ChordLengthM)

	in := v.RigidBody.Inertia
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "  inertia       [%10.5f %10.5f %10.5f]\n",
			in.At(i, 0), in.At(i, 1), in.At(i, 2))
	}

	fmt.Fprintf(w, "Actuators:\n")
	fmt.Fprintf(w, "  throttle      channel %d\n", v.ThrottleChannel)
	printSurface(w, "aileron_left", v.AileronLeft.Channel, v.AileronLeft.DeflectionMin, v.AileronLeft.DeflectionMax)
	printSurface(w, "aileron_right", v.AileronRight.Channel, v.AileronRight.DeflectionMin, v.AileronRight.DeflectionMax)
	printSurface(w, "elevator", v.Elevator.Channel, v.Elevator.DeflectionMin, v.Elevator.DeflectionMax)
	printSurface(w, "flap", v.Flap.Channel, v.Flap.DeflectionMin, v.Flap.DeflectionMax)
	printSurface(w, "rudder", v.Rudder.Channel, v.Rudder.DeflectionMin, v.Rudder.DeflectionMax)

	a := v.Aero
	fmt.Fprintf(w, "Aerodynamics:\n")
	fmt.Fprintf(w, "  alpha range   [%g, %g] rad\n", a.AlphaMin, a.AlphaMax)
	printVec(w, "c_drag_alpha", a.CDragAlpha[:])
	printVec(w, "c_drag_beta", a.CDragBeta[:])
	printVec(w, "c_drag_delta_ail", a.CDragDeltaAil[:])
	printVec(w, "c_drag_delta_flp", a.CDragDeltaFlp[:])
	printVec(w, "c_side_force_beta", a.CSideForceBeta[:])
	printVec(w, "c_lift_alpha", a.CLiftAlpha[:])
	printVec(w, "c_lift_delta_ail", a.CLiftDeltaAil[:])
	printVec(w, "c_lift_delta_flp", a.CLiftDeltaFlp[:])
	printVec(w, "c_roll_moment_beta", a.CRollMomentBeta[:])
	printVec(w, "c_roll_moment_p", a.CRollMomentP[:])
	printVec(w, "c_roll_moment_r", a.CRollMomentR[:])
	printVec(w, "c_roll_moment_delta_ail", a.CRollMomentDeltaAil[:])
	printVec(w, "c_roll_moment_delta_flp", a.CRollMomentDeltaFlp[:])
	printVec(w, "c_pitch_moment_alpha", a.CPitchMomentAlpha[:])
	printVec(w, "c_pitch_moment_q", a.CPitchMomentQ[:])
	printVec(w, "c_pitch_moment_delta_elv", a.CPitchMomentDeltaElv[:])
	printVec(w, "c_yaw_moment_beta", a.CYawMomentBeta[:])
	printVec(w, "c_yaw_moment_r", a.CYawMomentR[:])
	printVec(w, "c_yaw_moment_delta_rud", a.CYawMomentDeltaRud[:])
	printVec(w, "c_thrust", a.CThrust[:])
}

func printSurface(w io.Writer, name string, channel int, min, max float64) {
	fmt.Fprintf(w, "  %-13s channel %d, deflection [%.4f, %.4f] rad\n", name, channel, min, max)
}

func printVec(w io.Writer, name string, vals []float64) {
	fmt.Fprintf(w, "  %-24s %v\n", name, vals)
}
