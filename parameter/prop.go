package parameter

import "time"

// Physics prop (the shootable target cube)
const (
	PropSize      = 1.0
	PropMaxHealth = 100.0

	// Ground contact friction, per frame
	PropLinearFriction  = 0.95
	PropAngularFriction = 0.92

	// Rest detection thresholds
	PropRestLinearSpeed  = 0.02
	PropRestAngularSpeed = 0.05

	// Rotation snap toward the nearest right angle once at rest
	PropSnapLerpFactor = 0.15
	PropSnapEpsilon    = 0.01 // radians

	// HitFlashDuration clears the hit flag this long after the last hit
	HitFlashDuration = 100 * time.Millisecond

	// PropRespawnHalfExtent bounds the uniform random respawn square
	PropRespawnHalfExtent = 8.0
)

// Agent/prop collision response
const (
	PropPushImpulse       = 0.06
	PropTorqueFactor      = 0.25
	CollisionSeparateEach = 0.5 // Half the overlap to each body
)
