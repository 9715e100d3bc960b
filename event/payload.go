package event

import (
	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/core"
	"github.com/lixenwraith/shootbox/vmath"
)

// SwitchSlotPayload selects a weapon carry slot
type SwitchSlotPayload struct {
	Slot int // 0 or 1
}

// ZoomPayload carries zoom begin/end state
type ZoomPayload struct {
	Active bool
}

// BulletSpawnPayload contains parameters for a fired bullet
type BulletSpawnPayload struct {
	Origin   vmath.Vec3 // Muzzle position
	Velocity vmath.Vec3 // Aim direction scaled by bullet speed
	Damage   float64
	Kind     component.WeaponType
}

// GrenadeSpawnPayload contains parameters for a thrown grenade
type GrenadeSpawnPayload struct {
	Origin   vmath.Vec3
	Velocity vmath.Vec3
}

// PickupPayload applies the pickup transition for a consumed source.
// Ammo carries over from dropped weapons; fresh pickups use full ammo
type PickupPayload struct {
	Kind component.WeaponType
	Ammo int
}

// SoundRequestPayload names the effect to play
type SoundRequestPayload struct {
	Sound core.SoundType
}
