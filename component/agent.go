package component

import (
	"time"

	"github.com/lixenwraith/shootbox/vmath"
)

// AgentSlots is the number of weapon carry slots
const AgentSlots = 2

// Agent is the player-controlled entity. Singleton resource, mutated
// only by the agent, inventory and collision systems
type Agent struct {
	// Position.Y is the current eye height above the ground
	Position vmath.Vec3

	// VelY is the integrated vertical velocity; horizontal motion uses
	// the separately smoothed HorizontalVel (Y component unused)
	VelY          float64
	HorizontalVel vmath.Vec3

	Yaw   float64
	Pitch float64 // Clamped to ±π/2

	EyeHeight float64 // Smoothed stance height target output

	OnGround  bool
	Crouching bool
	Sprinting bool
	Zooming   bool

	// FOVOffset is lerped toward the stance/zoom target; additive to
	// the configured base field of view
	FOVOffset float64

	// Inventory: two slots, nil = empty
	Slots      [AgentSlots]*Weapon
	ActiveSlot int // Always 0 or 1

	GrenadeCount int
	LastShotTime time.Time
}

// ActiveWeapon returns the weapon in the active slot, nil if empty
func (a *Agent) ActiveWeapon() *Weapon {
	return a.Slots[a.ActiveSlot]
}
