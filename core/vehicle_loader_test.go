package core

import (
	"errors"
	"testing"
)

func TestLoadVehicleParameters_Overrides(t *testing.T) {
	doc := `
mass: 3.1
wing_span: 2.8
wing_surface: 0.52
chord_length: 0.2
inertia: [0.2, 0.01, 0.08, 0.4, 0.02, 0.6]
throttle_channel: 7
aileron_left_channel: 6
rudder_channel: 8
deflection_min: -0.4
deflection_max: 0.4
`
	p := NewVehicleParameters()
	if err := p.LoadVehicleParameters(writeDoc(t, doc)); err != nil {
		t.Fatalf("LoadVehicleParameters returned error: %v", err)
	}

	if p.RigidBody.MassKg != 3.1 {
		t.Errorf("MassKg = %g, want 3.1", p.RigidBody.MassKg)
	}
	if p.RigidBody.WingSpanM != 2.8 {
		t.Errorf("WingSpanM = %g, want 2.8", p.RigidBody.WingSpanM)
	}
	if p.RigidBody.WingSurfaceM2 != 0.52 {
		t.Errorf("WingSurfaceM2 = %g, want 0.52", p.RigidBody.WingSurfaceM2)
	}
	if p.RigidBody.ChordLengthM != 0.2 {
		t.Errorf("ChordLengthM = %g, want 0.2", p.RigidBody.ChordLengthM)
	}

	in := p.RigidBody.Inertia
	if in.At(0, 0) != 0.2 || in.At(1, 1) != 0.4 || in.At(2, 2) != 0.6 {
		t.Errorf("inertia diagonal = [%g %g %g], want [0.2 0.4 0.6]",
			in.At(0, 0), in.At(1, 1), in.At(2, 2))
	}
	// Off-diagonal entries must be mirrored.
	if in.At(0, 1) != 0.01 || in.At(1, 0) != 0.01 {
		t.Errorf("ixy mirror = (%g, %g), want (0.01, 0.01)", in.At(0, 1), in.At(1, 0))
	}
	if in.At(0, 2) != 0.08 || in.At(2, 0) != 0.08 {
		t.Errorf("ixz mirror = (%g, %g), want (0.08, 0.08)", in.At(0, 2), in.At(2, 0))
	}
	if in.At(1, 2) != 0.02 || in.At(2, 1) != 0.02 {
		t.Errorf("iyz mirror = (%g, %g), want (0.02, 0.02)", in.At(1, 2), in.At(2, 1))
	}

	if p.ThrottleChannel != 7 {
		t.Errorf("ThrottleChannel = %d, want 7", p.ThrottleChannel)
	}
	if p.AileronLeft.Channel != 6 {
		t.Errorf("AileronLeft.Channel = %d, want 6", p.AileronLeft.Channel)
	}
	if p.Rudder.Channel != 8 {
		t.Errorf("Rudder.Channel = %d, want 8", p.Rudder.Channel)
	}
	// Channels absent from the document keep their defaults.
	if p.Elevator.Channel != 1 || p.Flap.Channel != 2 || p.AileronRight.Channel != 0 {
		t.Errorf("untouched channels = (elv %d, flp %d, ail_r %d), want (1, 2, 0)",
			p.Elevator.Channel, p.Flap.Channel, p.AileronRight.Channel)
	}

	if p.Flap.DeflectionMin != -0.4 || p.Flap.DeflectionMax != 0.4 {
		t.Errorf("Flap deflection = [%g, %g], want [-0.4, 0.4]",
			p.Flap.DeflectionMin, p.Flap.DeflectionMax)
	}
}

func TestLoadVehicleParameters_SparseMerge(t *testing.T) {
	p := NewVehicleParameters()

	if err := p.LoadVehicleParameters(writeDoc(t, "mass: 4.2\n")); err != nil {
		t.Fatalf("LoadVehicleParameters returned error: %v", err)
	}

	want := *NewVehicleParameters()
	want.RigidBody.MassKg = 4.2
	if *p != want {
		t.Errorf("store after sparse merge differs from defaults in more than mass:\ngot  %+v\nwant %+v", *p, want)
	}
}

func TestLoadVehicleParameters_NegativeChannel(t *testing.T) {
	p := NewVehicleParameters()

	err := p.LoadVehicleParameters(writeDoc(t, "flap_channel: -1\n"))
	if !errors.Is(err, ErrConfigFormat) {
		t.Fatalf("LoadVehicleParameters error = %v, want ErrConfigFormat", err)
	}
}

func TestLoadVehicleParameters_InvertedDeflectionRange(t *testing.T) {
	p := NewVehicleParameters()

	err := p.LoadVehicleParameters(writeDoc(t, "deflection_min: 0.5\ndeflection_max: -0.5\n"))
	if !errors.Is(err, ErrConfigFormat) {
		t.Fatalf("LoadVehicleParameters error = %v, want ErrConfigFormat", err)
	}
}

func TestLoadVehicleParameters_InertiaArity(t *testing.T) {
	p := NewVehicleParameters()

	err := p.LoadVehicleParameters(writeDoc(t, "inertia: [0.2, 0.01, 0.08]\n"))
	if !errors.Is(err, ErrConfigFormat) {
		t.Fatalf("LoadVehicleParameters error = %v, want ErrConfigFormat", err)
	}
}

func TestLoadVehicleParameters_MissingFile(t *testing.T) {
	p := NewVehicleParameters()
	before := *p

	err := p.LoadVehicleParameters("does/not/exist.yaml")
	if !errors.Is(err, ErrConfigLoad) {
		t.Fatalf("LoadVehicleParameters error = %v, want ErrConfigLoad", err)
	}
	if *p != before {
		t.Errorf("store mutated by failed load of a missing file")
	}
}

func TestLoadVehicleParameters_BadChannelType(t *testing.T) {
	p := NewVehicleParameters()

	err := p.LoadVehicleParameters(writeDoc(t, "throttle_channel: full\n"))
	if !errors.Is(err, ErrConfigFormat) {
		t.Fatalf("LoadVehicleParameters error = %v, want ErrConfigFormat", err)
	}
}
