package model

import "github.com/go-gl/mathgl/mgl64"

// AerodynamicCoefficients holds the polynomial coefficient vectors of
// the fixed-wing aerodynamic model. Each vector's components are the
// polynomial terms in the order expected by the downstream force/moment
// consumer; the arity (2, 3 or 4) is fixed per coefficient.
//
// AlphaMax/AlphaMin bound the angle-of-attack range the model is valid
// for. The store does not clamp to this range; the consumer does.
type AerodynamicCoefficients struct {
	AlphaMax float64
	AlphaMin float64

	CDragAlpha    mgl64.Vec3
	CDragBeta     mgl64.Vec3
	CDragDeltaAil mgl64.Vec3
	CDragDeltaFlp mgl64.Vec3

	CSideForceBeta mgl64.Vec2

	CLiftAlpha    mgl64.Vec4
	CLiftDeltaAil mgl64.Vec2
	CLiftDeltaFlp mgl64.Vec2

	CRollMomentBeta     mgl64.Vec2
	CRollMomentP        mgl64.Vec2
	CRollMomentR        mgl64.Vec2
	CRollMomentDeltaAil mgl64.Vec2
	CRollMomentDeltaFlp mgl64.Vec2

	CPitchMomentAlpha    mgl64.Vec2
	CPitchMomentQ        mgl64.Vec2
	CPitchMomentDeltaElv mgl64.Vec2

	CYawMomentBeta     mgl64.Vec2
	CYawMomentR        mgl64.Vec2
	CYawMomentDeltaRud mgl64.Vec2

	CThrust mgl64.Vec3
}
