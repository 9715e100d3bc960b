package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/shootbox/event"
	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/vmath"
)

func TestGrenadeBounceReflectsVelocity(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewGrenadeSystem(w))

	w.PushEvent(event.EventGrenadeSpawnRequest, &event.GrenadeSpawnPayload{
		Origin:   vmath.Vec3{X: 0, Y: 0.35, Z: 0},
		Velocity: vmath.Vec3{X: 0.1, Y: -0.05, Z: 0},
	})
	step(w, clock)

	entities := w.Components.Grenade.GetAllEntities()
	if len(entities) != 1 {
		t.Fatalf("Expected 1 grenade, got %d", len(entities))
	}
	g, _ := w.Components.Grenade.GetComponent(entities[0])

	// Gravity brings vertical velocity to -0.06 before the bounce
	// reflects and halves it
	if math.Abs(g.Velocity.Y-0.03) > 1e-9 {
		t.Errorf("Expected bounced vertical velocity 0.03, got %v", g.Velocity.Y)
	}
	if math.Abs(g.Velocity.X-0.08) > 1e-9 {
		t.Errorf("Expected horizontal velocity damped to 0.08, got %v", g.Velocity.X)
	}
	if g.Position.Y != parameter.GrenadeRadius {
		t.Errorf("Expected grenade resting on radius %v, got %v", parameter.GrenadeRadius, g.Position.Y)
	}
}

func TestGrenadeDetonatesAtFuseAndDamagesProp(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewGrenadeSystem(w))

	prop := w.Resources.Prop
	prop.Position = vmath.Vec3{X: 2, Y: 0.5, Z: 0}
	prop.Size = parameter.PropSize
	prop.Health = parameter.PropMaxHealth

	w.PushEvent(event.EventGrenadeSpawnRequest, &event.GrenadeSpawnPayload{
		Origin:   vmath.Vec3{X: 0, Y: parameter.GrenadeRadius, Z: 0},
		Velocity: vmath.Vec3{},
	})
	step(w, clock)
	if w.Components.Grenade.CountEntities() != 1 {
		t.Fatal("Expected grenade alive before fuse")
	}

	clock.Advance(parameter.GrenadeFuse)
	w.Resources.Time.Update(clock.Now(), parameter.FrameInterval, w.FrameNumber()+1)
	w.Update()

	if w.Components.Grenade.CountEntities() != 0 {
		t.Error("Expected grenade destroyed at fuse deadline")
	}
	if prop.Health >= parameter.PropMaxHealth {
		t.Errorf("Expected blast damage, health still %v", prop.Health)
	}
	if prop.Velocity.X <= 0 {
		t.Errorf("Expected prop pushed away from blast, got %v", prop.Velocity)
	}
	if prop.Velocity.Y <= 0 {
		t.Errorf("Expected upward blast component, got %v", prop.Velocity.Y)
	}
}

func TestGrenadeOutOfRangeLeavesPropUntouched(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewGrenadeSystem(w))

	prop := w.Resources.Prop
	prop.Position = vmath.Vec3{X: 10, Y: 0.5, Z: 10}
	prop.Size = parameter.PropSize
	prop.Health = parameter.PropMaxHealth

	w.PushEvent(event.EventGrenadeSpawnRequest, &event.GrenadeSpawnPayload{
		Origin:   vmath.Vec3{X: -10, Y: parameter.GrenadeRadius, Z: -10},
		Velocity: vmath.Vec3{},
	})
	step(w, clock)

	clock.Advance(parameter.GrenadeFuse)
	w.Resources.Time.Update(clock.Now(), parameter.FrameInterval, w.FrameNumber()+1)
	w.Update()

	if w.Components.Grenade.CountEntities() != 0 {
		t.Error("Expected grenade destroyed even without a target in range")
	}
	if prop.Health != parameter.PropMaxHealth {
		t.Errorf("Expected no damage out of blast range, got %v", prop.Health)
	}
}

func TestBlastDamageFallsOffWithDistance(t *testing.T) {
	w, _ := newTestWorld()
	s := NewGrenadeSystem(w)
	w.AddSystem(s)

	prop := w.Resources.Prop
	prop.Size = parameter.PropSize

	near := func(d float64) float64 {
		prop.Position = vmath.Vec3{X: d, Y: 0, Z: 0}
		prop.Health = parameter.PropMaxHealth
		prop.Velocity = vmath.Vec3{}
		s.detonate(vmath.Vec3{})
		return parameter.PropMaxHealth - prop.Health
	}

	if got := near(1); math.Abs(got-40) > 1e-9 {
		t.Errorf("Expected 40 damage at distance 1, got %v", got)
	}
	if got := near(2.5); math.Abs(got-25) > 1e-9 {
		t.Errorf("Expected 25 damage at distance 2.5, got %v", got)
	}
	if got := near(5); got != 0 {
		t.Errorf("Expected no damage at blast radius, got %v", got)
	}
}
