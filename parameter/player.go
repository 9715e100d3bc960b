package parameter

import "math"

// Stance eye heights, lerped per frame
const (
	EyeHeightStanding = 1.7
	EyeHeightCrouched = 1.2

	// StanceLerpFactor is the per-frame smoothing toward target eye height
	StanceLerpFactor = 0.08
	// StanceSnapEpsilon snaps the lerp when the residual is below it
	StanceSnapEpsilon = 0.01
)

// Speed modifiers applied to the configured base movement speed
const (
	SprintSpeedFactor = 1.8
	CrouchSpeedFactor = 0.5
)

// Horizontal movement smoothing, per frame
const (
	// MoveAccelFactor blends actual velocity toward desired velocity
	MoveAccelFactor = 0.25
	// MoveDecelFactor damps horizontal velocity every frame
	MoveDecelFactor = 0.85
	// MoveZeroSnap zeroes horizontal velocity below this magnitude
	MoveZeroSnap = 1e-4
)

// Vertical movement: jump impulse and asymmetric gravity for a
// floaty rise, snappy fall arc
const (
	JumpPower = 0.18

	// Gravity is acceleration per frame squared at the assumed cadence
	Gravity = 0.010
	// GravityAscendFactor scales gravity while moving up
	GravityAscendFactor = 0.55
	// GravityDescendFactor scales gravity while moving down
	GravityDescendFactor = 1.6
)

// PitchLimit clamps look pitch to straight up/down
const PitchLimit = math.Pi / 2

// AgentRadius is the agent's horizontal collision radius
const AgentRadius = 0.45

// Field of view offset, degrees, additive to the configured base FOV
const (
	FOVZoomReduction = 20.0
	FOVSprintKick    = 5.0
	// FOVLerpFactor is the per-frame smoothing toward the target offset
	FOVLerpFactor = 0.15
)

// MuzzleOffset is the forward distance from the eye at which bullets spawn
const MuzzleOffset = 0.3
