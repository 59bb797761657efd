package core

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/fixedwing-dynamics/model"
)

var (
	// ErrConfigLoad covers documents that are missing, unreadable, or
	// malformed at the container level (not a YAML mapping at all).
	ErrConfigLoad = errors.New("config document unreadable")

	// ErrConfigFormat covers keys that are present but carry a value of
	// the wrong type, the wrong element count, or an out-of-range value.
	ErrConfigFormat = errors.New("config value malformed")
)

// scalarField maps a document key to a float64 field in the store.
type scalarField struct {
	key string
	dst *float64
}

// vectorField maps a document key to a fixed-arity coefficient vector.
// dst aliases the target array; its length is the expected arity.
type vectorField struct {
	key string
	dst []float64
}

// channelField maps a document key to an actuator channel index.
type channelField struct {
	key string
	dst *int
}

// LoadAerodynamicParameters merges aerodynamic overrides from the YAML
// document at path into the store. Keys absent from the document keep
// their current values; unrecognized keys are ignored.
//
// Keys are applied in a fixed order. On the first bad key the load
// aborts with ErrConfigFormat: keys applied earlier in the order stay
// applied and later keys are never reached. Callers must treat any
// failure as fatal and discard the store rather than trust its partial
// contents.
func (v *VehicleParameters) LoadAerodynamicParameters(path string) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	a := &v.Aero

	scalars := []scalarField{
		{"alpha_max", &a.AlphaMax},
		{"alpha_min", &a.AlphaMin},
	}
	for _, f := range scalars {
		if err := applyScalar(doc, f); err != nil {
			return err
		}
	}

	vectors := []vectorField{
		{"c_drag_alpha", a.CDragAlpha[:]},
		{"c_drag_beta", a.CDragBeta[:]},
		{"c_drag_delta_ail", a.CDragDeltaAil[:]},
		{"c_drag_delta_flp", a.CDragDeltaFlp[:]},

		{"c_side_force_beta", a.CSideForceBeta[:]},

		{"c_lift_alpha", a.CLiftAlpha[:]},
		{"c_lift_delta_ail", a.CLiftDeltaAil[:]},
		{"c_lift_delta_flp", a.CLiftDeltaFlp[:]},

		{"c_roll_moment_beta", a.CRollMomentBeta[:]},
		{"c_roll_moment_p", a.CRollMomentP[:]},
		{"c_roll_moment_r", a.CRollMomentR[:]},
		{"c_roll_moment_delta_ail", a.CRollMomentDeltaAil[:]},
		{"c_roll_moment_delta_flp", a.CRollMomentDeltaFlp[:]},

		{"c_pitch_moment_alpha", a.CPitchMomentAlpha[:]},
		{"c_pitch_moment_q", a.CPitchMomentQ[:]},
		{"c_pitch_moment_delta_elv", a.CPitchMomentDeltaElv[:]},

		{"c_yaw_moment_beta", a.CYawMomentBeta[:]},
		{"c_yaw_moment_r", a.CYawMomentR[:]},
		{"c_yaw_moment_delta_rud", a.CYawMomentDeltaRud[:]},

		{"c_thrust", a.CThrust[:]},
	}
	for _, f := range vectors {
		if err := applyVector(doc, f); err != nil {
			return err
		}
	}

	return nil
}

// LoadVehicleParameters merges rigid-body and actuator overrides from
// the YAML document at path into the store. Same sparse-merge and
// partial-failure semantics as LoadAerodynamicParameters.
//
// The inertia tensor is supplied as its six unique entries
// [ixx, ixy, ixz, iyy, iyz, izz] and mirrored into the symmetric
// matrix. deflection_min/deflection_max apply to all five surfaces.
func (v *VehicleParameters) LoadVehicleParameters(path string) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	scalars := []scalarField{
		{"mass", &v.RigidBody.MassKg},
		{"wing_span", &v.RigidBody.WingSpanM},
		{"wing_surface", &v.RigidBody.WingSurfaceM2},
		{"chord_length", &v.RigidBody.ChordLengthM},
	}
	for _, f := range scalars {
		if err := applyScalar(doc, f); err != nil {
			return err
		}
	}

	if node, ok := doc["inertia"]; ok {
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return fmt.Errorf("%w: key %q: %v", ErrConfigFormat, "inertia", err)
		}
		if len(vals) != 6 {
			return fmt.Errorf("%w: key %q expects 6 elements [ixx ixy ixz iyy iyz izz], got %d",
				ErrConfigFormat, "inertia", len(vals))
		}
		v.RigidBody.Inertia = model.SymmetricInertia(
			vals[0], vals[1], vals[2], vals[3], vals[4], vals[5])
	}

	channels := []channelField{
		{"throttle_channel", &v.ThrottleChannel},
		{"aileron_left_channel", &v.AileronLeft.Channel},
		{"aileron_right_channel", &v.AileronRight.Channel},
		{"elevator_channel", &v.Elevator.Channel},
		{"flap_channel", &v.Flap.Channel},
		{"rudder_channel", &v.Rudder.Channel},
	}
	for _, f := range channels {
		if err := applyChannel(doc, f); err != nil {
			return err
		}
	}

	surfaces := []*model.ControlSurface{
		&v.AileronLeft, &v.AileronRight, &v.Elevator, &v.Flap, &v.Rudder,
	}
	if val, ok, err := decodeScalar(doc, "deflection_min"); err != nil {
		return err
	} else if ok {
		for _, s := range surfaces {
			s.DeflectionMin = val
		}
	}
	if val, ok, err := decodeScalar(doc, "deflection_max"); err != nil {
		return err
	} else if ok {
		for _, s := range surfaces {
			s.DeflectionMax = val
		}
	}
	for _, s := range surfaces {
		if s.DeflectionMin > s.DeflectionMax {
			return fmt.Errorf("%w: deflection range [%g, %g] has min > max",
				ErrConfigFormat, s.DeflectionMin, s.DeflectionMax)
		}
	}

	return nil
}

// readDocument reads and parses a YAML mapping. The returned map keeps
// each value as a raw node so the caller can decode it against the
// expected type of the target field.
func readDocument(path string) (map[string]yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrConfigLoad, path, err)
	}
	return doc, nil
}

// decodeScalar fetches and decodes a float key without a fixed target.
// The second return reports whether the key was present.
func decodeScalar(doc map[string]yaml.Node, key string) (float64, bool, error) {
	node, ok := doc[key]
	if !ok {
		return 0, false, nil
	}
	var val float64
	if err := node.Decode(&val); err != nil {
		return 0, false, fmt.Errorf("%w: key %q: %v", ErrConfigFormat, key, err)
	}
	return val, true, nil
}

func applyScalar(doc map[string]yaml.Node, f scalarField) error {
	node, ok := doc[f.key]
	if !ok {
		return nil
	}
	if err := node.Decode(f.dst); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrConfigFormat, f.key, err)
	}
	return nil
}

func applyVector(doc map[string]yaml.Node, f vectorField) error {
	node, ok := doc[f.key]
	if !ok {
		return nil
	}
	var vals []float64
	if err := node.Decode(&vals); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrConfigFormat, f.key, err)
	}
	if len(vals) != len(f.dst) {
		return fmt.Errorf("%w: key %q expects %d elements, got %d",
			ErrConfigFormat, f.key, len(f.dst), len(vals))
	}
	copy(f.dst, vals)
	return nil
}

func applyChannel(doc map[string]yaml.Node, f channelField) error {
	node, ok := doc[f.key]
	if !ok {
		return nil
	}
	var ch int
	if err := node.Decode(&ch); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrConfigFormat, f.key, err)
	}
	if ch < 0 {
		return fmt.Errorf("%w: key %q: channel must be non-negative, got %d",
			ErrConfigFormat, f.key, ch)
	}
	*f.dst = ch
	return nil
}
