package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/input"
	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/vmath"
)

func TestStanceTransitionConverges(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewAgentSystem(w))
	agent := w.Resources.Agent

	w.Resources.Input.Held[input.ActionCrouch] = true
	for i := 0; i < 120; i++ {
		step(w, clock)
	}
	if agent.EyeHeight != parameter.EyeHeightCrouched {
		t.Errorf("Expected eye height to snap to %v, got %v", parameter.EyeHeightCrouched, agent.EyeHeight)
	}
	if agent.Position.Y != parameter.EyeHeightCrouched {
		t.Errorf("Expected grounded position to follow eye height, got %v", agent.Position.Y)
	}

	w.Resources.Input.Held[input.ActionCrouch] = false
	for i := 0; i < 120; i++ {
		step(w, clock)
	}
	if agent.EyeHeight != parameter.EyeHeightStanding {
		t.Errorf("Expected eye height to return to %v, got %v", parameter.EyeHeightStanding, agent.EyeHeight)
	}
}

func TestSprintScalesSpeedAndKicksFOV(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewAgentSystem(w))
	agent := w.Resources.Agent

	w.Resources.Input.Held[input.ActionForward] = true
	for i := 0; i < 200; i++ {
		step(w, clock)
	}
	walkSpeed := vmath.HorizontalMag(agent.HorizontalVel)
	if walkSpeed <= 0 {
		t.Fatal("Expected forward movement to build horizontal speed")
	}

	w.Resources.Input.Held[input.ActionSprint] = true
	for i := 0; i < 200; i++ {
		step(w, clock)
	}
	sprintSpeed := vmath.HorizontalMag(agent.HorizontalVel)

	ratio := sprintSpeed / walkSpeed
	if math.Abs(ratio-parameter.SprintSpeedFactor) > 0.01 {
		t.Errorf("Expected sprint/walk speed ratio near %v, got %v", parameter.SprintSpeedFactor, ratio)
	}
	if agent.FOVOffset < parameter.FOVSprintKick*0.9 {
		t.Errorf("Expected FOV sprint kick near %v, got %v", parameter.FOVSprintKick, agent.FOVOffset)
	}
}

func TestCrouchBlocksSprint(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewAgentSystem(w))
	agent := w.Resources.Agent

	w.Resources.Input.Held[input.ActionSprint] = true
	w.Resources.Input.Held[input.ActionCrouch] = true
	step(w, clock)

	if agent.Sprinting {
		t.Error("Expected sprint suppressed while crouching")
	}
}

func TestJumpRisingEdgeAndLanding(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewAgentSystem(w))
	agent := w.Resources.Agent

	w.Resources.Input.Held[input.ActionJump] = true
	step(w, clock)
	if agent.OnGround {
		t.Fatal("Expected agent airborne after jump")
	}
	firstVelY := agent.VelY

	// Holding jump must not re-trigger at apex or on the way down
	for i := 0; i < 120 && !agent.OnGround; i++ {
		step(w, clock)
		if agent.VelY > firstVelY {
			t.Fatal("Expected no double jump while held")
		}
	}
	if !agent.OnGround {
		t.Fatal("Expected agent to land within 120 frames")
	}
	if agent.Position.Y != agent.EyeHeight {
		t.Errorf("Expected landing at eye height %v, got %v", agent.EyeHeight, agent.Position.Y)
	}
	if agent.VelY != 0 {
		t.Errorf("Expected vertical velocity cleared on landing, got %v", agent.VelY)
	}
}

func TestPitchClampsAtVertical(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewAgentSystem(w))
	agent := w.Resources.Agent

	w.Resources.Input.MouseDY = -1e6
	step(w, clock)
	if agent.Pitch != parameter.PitchLimit {
		t.Errorf("Expected pitch clamped to %v, got %v", parameter.PitchLimit, agent.Pitch)
	}

	w.Resources.Input.MouseDY = 1e6
	step(w, clock)
	if agent.Pitch != -parameter.PitchLimit {
		t.Errorf("Expected pitch clamped to %v, got %v", -parameter.PitchLimit, agent.Pitch)
	}
}

func TestMovementDecaysToExactZero(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewAgentSystem(w))
	agent := w.Resources.Agent

	w.Resources.Input.Held[input.ActionForward] = true
	for i := 0; i < 60; i++ {
		step(w, clock)
	}
	w.Resources.Input.Held[input.ActionForward] = false
	for i := 0; i < 120; i++ {
		step(w, clock)
	}

	if agent.HorizontalVel.X != 0 || agent.HorizontalVel.Z != 0 {
		t.Errorf("Expected velocity snapped to exactly zero, got %v", agent.HorizontalVel)
	}
}

func TestAgentStopsAtArenaWall(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewAgentSystem(w))
	agent := w.Resources.Agent

	// Yaw 0 faces -Z; walk into the far wall
	w.Resources.Input.Held[input.ActionForward] = true
	for i := 0; i < 1000; i++ {
		step(w, clock)
	}

	limit := parameter.WorldHalfExtent - parameter.AgentRadius
	if agent.Position.Z != -limit {
		t.Errorf("Expected agent held at wall %v, got %v", -limit, agent.Position.Z)
	}
	if agent.HorizontalVel.Z != 0 {
		t.Errorf("Expected wall contact to zero forward velocity, got %v", agent.HorizontalVel.Z)
	}
}

func TestFireCooldownAndAmmo(t *testing.T) {
	w, clock := newTestWorld()
	s := NewAgentSystem(w)
	w.AddSystem(s)
	agent := w.Resources.Agent

	agent.Slots[0] = &component.Weapon{Kind: component.WeaponPistol, Ammo: 2}

	if !s.Fire() {
		t.Fatal("Expected first shot to succeed")
	}
	if agent.Slots[0].Ammo != 1 {
		t.Errorf("Expected ammo 1 after shot, got %d", agent.Slots[0].Ammo)
	}
	if s.Fire() {
		t.Error("Expected shot rejected within cooldown")
	}
	if agent.Slots[0].Ammo != 1 {
		t.Error("Expected rejected shot to leave ammo untouched")
	}

	clock.Advance(300 * time.Millisecond)
	w.Resources.Time.Update(clock.Now(), parameter.FrameInterval, w.FrameNumber())
	if !s.Fire() {
		t.Fatal("Expected shot after cooldown elapsed")
	}

	clock.Advance(300 * time.Millisecond)
	w.Resources.Time.Update(clock.Now(), parameter.FrameInterval, w.FrameNumber())
	if s.Fire() {
		t.Error("Expected dry fire with zero ammo")
	}
}

func TestFireWithEmptyHands(t *testing.T) {
	w, _ := newTestWorld()
	s := NewAgentSystem(w)
	w.AddSystem(s)

	if s.Fire() {
		t.Error("Expected fire to fail with no weapon equipped")
	}
}

func TestFireSpawnsBulletNextFrame(t *testing.T) {
	w, clock := newTestWorld()
	s := NewAgentSystem(w)
	w.AddSystem(s)
	w.AddSystem(NewProjectileSystem(w))

	w.Resources.Agent.Slots[0] = &component.Weapon{Kind: component.WeaponRifle, Ammo: 5}
	s.Fire()

	if w.Components.Bullet.CountEntities() != 0 {
		t.Fatal("Expected spawn deferred to the next frame")
	}
	step(w, clock)
	if w.Components.Bullet.CountEntities() != 1 {
		t.Errorf("Expected 1 bullet after update, got %d", w.Components.Bullet.CountEntities())
	}
}

func TestThrowGrenadeConsumesCount(t *testing.T) {
	w, clock := newTestWorld()
	s := NewAgentSystem(w)
	w.AddSystem(s)
	w.AddSystem(NewGrenadeSystem(w))
	agent := w.Resources.Agent

	for i := 0; i < parameter.GrenadeStartCount; i++ {
		if !s.ThrowGrenade() {
			t.Fatalf("Expected throw %d to succeed", i+1)
		}
	}
	if s.ThrowGrenade() {
		t.Error("Expected throw rejected with zero grenades")
	}
	if agent.GrenadeCount != 0 {
		t.Errorf("Expected grenade count 0, got %d", agent.GrenadeCount)
	}

	step(w, clock)
	if w.Components.Grenade.CountEntities() != parameter.GrenadeStartCount {
		t.Errorf("Expected %d live grenades, got %d", parameter.GrenadeStartCount, w.Components.Grenade.CountEntities())
	}
}

func TestZoomOverridesSprintFOV(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewAgentSystem(w))
	agent := w.Resources.Agent

	agent.Zooming = true
	w.Resources.Input.Held[input.ActionForward] = true
	w.Resources.Input.Held[input.ActionSprint] = true
	for i := 0; i < 200; i++ {
		step(w, clock)
	}

	if agent.FOVOffset > -parameter.FOVZoomReduction*0.9 {
		t.Errorf("Expected zoom FOV reduction near %v, got %v", -parameter.FOVZoomReduction, agent.FOVOffset)
	}
}
