package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector
// X and Z span the horizontal ground plane, Y is up
type Vec3 struct {
	X, Y, Z float64
}

func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func Mag(v Vec3) float64 {
	return math.Sqrt(MagSq(v))
}

func Normalize(v Vec3) Vec3 {
	mag := Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// HorizontalMag returns the magnitude of the X/Z components only
func HorizontalMag(v Vec3) float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// HorizontalDist returns the ground-plane distance between two points
func HorizontalDist(a, b Vec3) float64 {
	dx := b.X - a.X
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Dist returns the straight-line distance between two points
func Dist(a, b Vec3) float64 {
	return Mag(Sub(b, a))
}

// Damp scales each component by factor (1 = no damp, 0 = full damp)
func Damp(v Vec3, factor float64) Vec3 {
	return Vec3{v.X * factor, v.Y * factor, v.Z * factor}
}

// ClampMagnitude limits vector magnitude
func ClampMagnitude(v Vec3, maxMag float64) Vec3 {
	magSq := MagSq(v)
	if magSq <= maxMag*maxMag {
		return v
	}
	return Scale(Normalize(v), maxMag)
}

// YawDir returns the unit forward vector on the ground plane for a yaw angle
func YawDir(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: -math.Cos(yaw)}
}

// AimDir returns the unit aim vector for yaw and pitch
func AimDir(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: -math.Cos(yaw) * cp,
	}
}
