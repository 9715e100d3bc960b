package physics

import (
	"github.com/lixenwraith/shootbox/vmath"
)

// AtRest reports whether a grounded body's motion is negligible:
// horizontal speed and angular speed both below their thresholds
func AtRest(vel, angVel vmath.Vec3, linThreshold, angThreshold float64) bool {
	return vmath.HorizontalMag(vel) < linThreshold && vmath.Mag(angVel) < angThreshold
}

// SnapRotation pulls each Euler axis toward its nearest right-angle
// increment by exponential smoothing, snapping exactly within epsilon.
// Produces natural-looking settling onto a face without a rigid-body solver
func SnapRotation(rot *vmath.Vec3, factor, epsilon float64) {
	rot.X = vmath.LerpSnap(rot.X, vmath.NearestRightAngle(rot.X), factor, epsilon)
	rot.Y = vmath.LerpSnap(rot.Y, vmath.NearestRightAngle(rot.Y), factor, epsilon)
	rot.Z = vmath.LerpSnap(rot.Z, vmath.NearestRightAngle(rot.Z), factor, epsilon)
}
