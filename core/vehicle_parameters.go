package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/signalsfoundry/fixedwing-dynamics/model"
)

// Default control-surface deflection limits (Techpod model, radians).
const (
	DefaultDeflectionMin = -20.0 * math.Pi / 180.0
	DefaultDeflectionMax = 20.0 * math.Pi / 180.0
)

// VehicleParameters is the parameter store for one fixed-wing aircraft:
// rigid-body constants, actuator channel mapping, and aerodynamic
// coefficients. It is constructed fully populated with the Techpod
// reference values, so the store is usable even when no override
// document is supplied.
//
// The store has a single owner (the enclosing plugin instance) and is
// only mutated by the Load* operations during initialization; after
// that it is read-only.
type VehicleParameters struct {
	RigidBody model.RigidBodyParameters

	// ThrottleChannel carries the scalar thrust command; it is a bare
	// channel index, not a deflecting surface.
	ThrottleChannel int

	AileronLeft  model.ControlSurface
	AileronRight model.ControlSurface
	Elevator     model.ControlSurface
	Flap         model.ControlSurface
	Rudder       model.ControlSurface

	Aero model.AerodynamicCoefficients
}

// NewVehicleParameters returns a store populated with the Techpod
// reference aircraft. Every field is initialized here; this constructor
// is the single place the default set lives, so tests can audit it
// field by field.
func NewVehicleParameters() *VehicleParameters {
	return &VehicleParameters{
		RigidBody: model.RigidBodyParameters{
			MassKg:        2.65,
			WingSpanM:     2.59,
			WingSurfaceM2: 0.47,
			ChordLengthM:  0.18,
			Inertia:       model.SymmetricInertia(0.16632, 0.0, 0.0755, 0.3899, 0.0, 0.5243),
		},

		ThrottleChannel: 5,

		AileronLeft:  defaultSurface(4),
		AileronRight: defaultSurface(0),
		Elevator:     defaultSurface(1),
		Flap:         defaultSurface(2),
		Rudder:       defaultSurface(3),

		Aero: model.AerodynamicCoefficients{
			AlphaMax: 0.27,
			AlphaMin: -0.27,

			CDragAlpha:    mgl64.Vec3{0.1360, -0.6737, 5.4546},
			CDragBeta:     mgl64.Vec3{0.0195, 0.0, -0.3842},
			CDragDeltaAil: mgl64.Vec3{0.0195, 1.4205e-4, 7.5037e-6},
			CDragDeltaFlp: mgl64.Vec3{0.0195, 2.7395e-4, 1.23e-5},

			CSideForceBeta: mgl64.Vec2{0.0, -0.3073},

			CLiftAlpha:    mgl64.Vec4{0.2127, 10.8060, -46.8324, 60.6017},
			CLiftDeltaAil: mgl64.Vec2{0.3304, 0.0048},
			CLiftDeltaFlp: mgl64.Vec2{0.3304, 0.0073},

			CRollMomentBeta:     mgl64.Vec2{0.0, -0.0154},
			CRollMomentP:        mgl64.Vec2{0.0, -0.1647},
			CRollMomentR:        mgl64.Vec2{0.0, 0.0117},
			CRollMomentDeltaAil: mgl64.Vec2{0.0, 0.0570},
			CRollMomentDeltaFlp: mgl64.Vec2{0.0, 0.001},

			CPitchMomentAlpha:    mgl64.Vec2{0.0435, -2.9690},
			CPitchMomentQ:        mgl64.Vec2{-0.1173, -106.1541},
			CPitchMomentDeltaElv: mgl64.Vec2{-0.1173, -6.1308},

			CYawMomentBeta:     mgl64.Vec2{0.0, 0.0430},
			CYawMomentR:        mgl64.Vec2{0.0, -0.0827},
			CYawMomentDeltaRud: mgl64.Vec2{0.0, 0.06},

			CThrust: mgl64.Vec3{0.0, 14.7217, 0.0},
		},
	}
}

func defaultSurface(channel int) model.ControlSurface {
	return model.ControlSurface{
		Channel:       channel,
		DeflectionMin: DefaultDeflectionMin,
		DeflectionMax: DefaultDeflectionMax,
	}
}
