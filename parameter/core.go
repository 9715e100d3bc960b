package parameter

import "time"

// Frame cadence the per-frame constants are tuned against
// The frame driver ticks at this rate; per-frame factors assume it
const (
	TargetFrameRate = 60
	FrameInterval   = time.Second / TargetFrameRate
)

// World extent: the playfield is a square on the ground plane,
// centered on the origin
const (
	WorldHalfExtent = 12.0

	// GroundY is the height of the ground plane
	GroundY = 0.0
)

// System update priorities, lower runs first
// Order per frame: agent, agent/prop collision, bullets, grenades,
// inventory, pickups, prop free motion, audio
const (
	PriorityAgent      = 10
	PriorityCollision  = 20
	PriorityProjectile = 30
	PriorityGrenade    = 40
	PriorityInventory  = 50
	PriorityPickup     = 60
	PriorityProp       = 70
	PriorityAudio      = 90
)
