package component

import (
	"time"

	"github.com/lixenwraith/shootbox/vmath"
)

// Bullet is a transient projectile, owned by the projectile system.
// Destroyed on ground contact, expiry, or prop impact
type Bullet struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
	Damage   float64
	Kind     WeaponType // Visual/speed lookup
	// ExpireTime is the absolute destruction deadline
	ExpireTime time.Time
}
