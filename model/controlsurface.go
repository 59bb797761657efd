package model

// ControlSurface maps one movable aerodynamic panel (aileron, elevator,
// flap, rudder) to an actuator input channel and its allowed deflection
// range in radians.
//
// Channel indices are non-negative. DeflectionMin <= DeflectionMax is
// enforced at the loader boundary, not here.
type ControlSurface struct {
	Channel int

	DeflectionMin float64
	DeflectionMax float64
}
