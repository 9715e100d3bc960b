package parameter

import "time"

// Bullets
const (
	BulletLifetime = 3000 * time.Millisecond

	// Impulse and torque transferred to the prop on a bullet hit,
	// along the bullet's normalized travel direction
	BulletHitImpulse = 0.08
	BulletHitTorque  = 0.3
)

// Grenades
const (
	GrenadeFuse       = 2500 * time.Millisecond
	GrenadeThrowSpeed = 0.25
	GrenadeThrowLift  = 0.12
	GrenadeRadius     = 0.3
	GrenadeStartCount = 3

	// Ground bounce damping
	GrenadeBounceRestitution = 0.5
	GrenadeBounceFriction    = 0.8

	// Blast: damage falls off linearly with distance inside the radius
	BlastRadius     = 5.0
	BlastMaxDamage  = 50.0
	BlastPushScale  = 0.15
	BlastUpwardPush = 0.08
)
