package parameter

// Weapon pickups and drops
const (
	// PickupRadius gates proximity pickup of points and dropped weapons.
	// Must stay below DropForwardOffset or a fresh drop is grabbed back
	// the same frame it lands
	PickupRadius = 0.8

	// PickupPushImpulse knocks unsettled pickups away from the agent,
	// analogous to the prop push but weaker
	PickupPushImpulse = 0.02

	// Dropped weapons eject forward of the agent with a small
	// outward and upward velocity
	DropForwardOffset = 1.2
	DropOutwardSpeed  = 0.05
	DropUpwardSpeed   = 0.04

	// Settle physics for airborne pickups/drops
	PickupRestHeight      = 0.25
	PickupLinearFriction  = 0.90
	PickupSpinRate        = 0.02 // Idle display spin, radians per frame
	PickupRestLinearSpeed = 0.01
)
