package component

import (
	"time"

	"github.com/lixenwraith/shootbox/core"
)

// Prop is the physics-driven target cube. Singleton resource
type Prop struct {
	core.Kinetic

	Health float64 // 0..max, respawn at ≤0
	Size   float64 // Edge length

	// Hit is a transient visual flag, cleared shortly after HitTime
	Hit     bool
	HitTime time.Time
}
