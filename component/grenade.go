package component

import (
	"time"

	"github.com/lixenwraith/shootbox/vmath"
)

// Grenade is a thrown explosive under gravity. Removed at fuse expiry
// whether or not the blast reaches anything
type Grenade struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
	// FuseTime is the absolute detonation timestamp
	FuseTime time.Time
}
