package model

import "github.com/go-gl/mathgl/mgl64"

// RigidBodyParameters describes the airframe's physical constants:
// mass, reference geometry, and the 3x3 inertia tensor.
//
// The inertia tensor is symmetric; SymmetricInertia builds it from the
// six unique entries so the mirror property holds by construction.
type RigidBodyParameters struct {
	MassKg        float64
	WingSpanM     float64
	WingSurfaceM2 float64
	ChordLengthM  float64

	Inertia mgl64.Mat3
}

// SymmetricInertia assembles a symmetric inertia tensor from its six
// unique entries (kg·m²).
func SymmetricInertia(ixx, ixy, ixz, iyy, iyz, izz float64) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{ixx, ixy, ixz},
		mgl64.Vec3{ixy, iyy, iyz},
		mgl64.Vec3{ixz, iyz, izz},
	)
}
