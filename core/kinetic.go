package core

import "github.com/lixenwraith/shootbox/vmath"

// Kinetic is the shared free-body shape: position, velocity and
// Euler rotation with angular velocity
type Kinetic struct {
	Position   vmath.Vec3
	Velocity   vmath.Vec3
	Rotation   vmath.Vec3
	AngularVel vmath.Vec3
}
