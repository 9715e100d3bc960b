package component

import (
	"github.com/lixenwraith/shootbox/vmath"
)

// PickupPoint is a fixed weapon spawn. A picked point is inert until a
// reset repopulates it. Velocity and Rotation are transient, used only
// while the pickup is unsettled (knocked by the agent)
type PickupPoint struct {
	SpawnPos vmath.Vec3
	Position vmath.Vec3
	Velocity vmath.Vec3
	Rotation vmath.Vec3
	Kind     WeaponType
	Picked   bool
}

// DroppedWeapon is a weapon ejected from inventory into the world,
// carrying its remaining ammo. Destroyed when picked back up
type DroppedWeapon struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
	Rotation vmath.Vec3
	Kind     WeaponType
	Ammo     int
}
