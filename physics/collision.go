package physics

import (
	"math"

	"github.com/lixenwraith/shootbox/vmath"
)

// CircleOverlap tests two bodies as circles on the ground plane.
// Returns the unit normal from a toward b and the penetration depth.
// Coincident centers are degenerate: no normal can be computed, so the
// pair reports no overlap and applies no separation this frame
func CircleOverlap(a, b vmath.Vec3, ra, rb float64) (n vmath.Vec3, depth float64, ok bool) {
	dx := b.X - a.X
	dz := b.Z - a.Z
	distSq := dx*dx + dz*dz
	minDist := ra + rb

	if distSq >= minDist*minDist || distSq == 0 {
		return vmath.Vec3{}, 0, false
	}

	dist := math.Sqrt(distSq)
	invDist := 1.0 / dist
	return vmath.Vec3{X: dx * invDist, Z: dz * invDist}, minDist - dist, true
}

// ContainsAABB tests a point against an axis-aligned cube of the given
// half extent. Body rotation is ignored
func ContainsAABB(center vmath.Vec3, halfExtent float64, p vmath.Vec3) bool {
	return math.Abs(p.X-center.X) <= halfExtent &&
		math.Abs(p.Y-center.Y) <= halfExtent &&
		math.Abs(p.Z-center.Z) <= halfExtent
}

// BounceGround reflects a falling body off the ground plane: vertical
// velocity negates and damps by restitution, horizontal velocity damps
// by friction. Returns true if a bounce occurred
func BounceGround(pos, vel *vmath.Vec3, restHeight, restitution, friction float64) bool {
	if pos.Y > restHeight || vel.Y >= 0 {
		return false
	}
	pos.Y = restHeight
	vel.Y = -vel.Y * restitution
	vel.X *= friction
	vel.Z *= friction
	return true
}
