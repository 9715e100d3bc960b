package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/shootbox/vmath"
)

func TestCircleOverlap(t *testing.T) {
	tests := []struct {
		name      string
		a, b      vmath.Vec3
		ra, rb    float64
		wantOK    bool
		wantDepth float64
	}{
		{"Separated", vmath.Vec3{}, vmath.Vec3{X: 5}, 1, 1, false, 0},
		{"Touching exactly", vmath.Vec3{}, vmath.Vec3{X: 2}, 1, 1, false, 0},
		{"Overlapping", vmath.Vec3{}, vmath.Vec3{X: 1.5}, 1, 1, true, 0.5},
		{"Coincident centers", vmath.Vec3{X: 3, Z: 3}, vmath.Vec3{X: 3, Z: 3}, 1, 1, false, 0},
		{"Vertical offset ignored", vmath.Vec3{}, vmath.Vec3{X: 1.5, Y: 10}, 1, 1, true, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, depth, ok := CircleOverlap(tt.a, tt.b, tt.ra, tt.rb)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if math.Abs(depth-tt.wantDepth) > 1e-9 {
				t.Errorf("Expected depth %f, got %f", tt.wantDepth, depth)
			}
			if math.Abs(vmath.Mag(n)-1) > 1e-9 {
				t.Errorf("Expected unit normal, got magnitude %f", vmath.Mag(n))
			}
			if n.Y != 0 {
				t.Errorf("Expected horizontal normal, got Y=%f", n.Y)
			}
		})
	}
}

func TestContainsAABB(t *testing.T) {
	center := vmath.Vec3{X: 1, Y: 1, Z: 1}
	tests := []struct {
		name string
		p    vmath.Vec3
		want bool
	}{
		{"Center", vmath.Vec3{X: 1, Y: 1, Z: 1}, true},
		{"On face", vmath.Vec3{X: 1.5, Y: 1, Z: 1}, true},
		{"Outside one axis", vmath.Vec3{X: 1.6, Y: 1, Z: 1}, false},
		{"Outside vertically", vmath.Vec3{X: 1, Y: 2, Z: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsAABB(center, 0.5, tt.p); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBounceGround(t *testing.T) {
	// Grenade contract: vertical -0.05 at rest height 0.3 bounces to
	// +0.025, horizontal scaled by 0.8
	pos := vmath.Vec3{X: 1, Y: 0.2, Z: 2}
	vel := vmath.Vec3{X: 0.1, Y: -0.05, Z: -0.2}

	if !BounceGround(&pos, &vel, 0.3, 0.5, 0.8) {
		t.Fatal("Expected bounce to occur")
	}
	if pos.Y != 0.3 {
		t.Errorf("Expected clamp to rest height 0.3, got %f", pos.Y)
	}
	if math.Abs(vel.Y-0.025) > 1e-12 {
		t.Errorf("Expected vertical velocity +0.025, got %f", vel.Y)
	}
	if math.Abs(vel.X-0.08) > 1e-12 || math.Abs(vel.Z+0.16) > 1e-12 {
		t.Errorf("Expected horizontal damped by 0.8, got (%f, %f)", vel.X, vel.Z)
	}
}

func TestBounceGroundNoBounceWhenRising(t *testing.T) {
	pos := vmath.Vec3{Y: 0.1}
	vel := vmath.Vec3{Y: 0.05}
	if BounceGround(&pos, &vel, 0.3, 0.5, 0.8) {
		t.Error("Expected no bounce while ascending")
	}
}
