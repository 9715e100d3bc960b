package system

import (
	"math"

	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/core"
	"github.com/lixenwraith/shootbox/engine"
	"github.com/lixenwraith/shootbox/event"
	"github.com/lixenwraith/shootbox/input"
	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/vmath"
)

// AgentSystem owns the player's kinematic state: look orientation,
// stance, smoothed horizontal movement, the asymmetric-gravity jump
// arc, the FOV offset, and the firing/throwing operations
type AgentSystem struct {
	world *engine.World
	res   *engine.Resources

	// prevJump detects the rising edge of the jump control
	prevJump bool
}

func NewAgentSystem(world *engine.World) *AgentSystem {
	s := &AgentSystem{world: world, res: world.Resources}
	s.Init()
	return s
}

func (s *AgentSystem) Init() {
	*s.res.Agent = component.Agent{
		Position:     vmath.Vec3{X: 0, Y: parameter.EyeHeightStanding, Z: 6},
		EyeHeight:    parameter.EyeHeightStanding,
		OnGround:     true,
		GrenadeCount: parameter.GrenadeStartCount,
	}
	s.prevJump = false
}

func (s *AgentSystem) Name() string { return "agent" }

func (s *AgentSystem) Priority() int { return parameter.PriorityAgent }

func (s *AgentSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventCommandFire,
		event.EventCommandThrowGrenade,
		event.EventCommandZoom,
	}
}

func (s *AgentSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventCommandFire:
		s.Fire()
	case event.EventCommandThrowGrenade:
		s.ThrowGrenade()
	case event.EventCommandZoom:
		if p, ok := ev.Payload.(*event.ZoomPayload); ok {
			s.res.Agent.Zooming = p.Active
		}
	}
}

func (s *AgentSystem) Update() {
	agent := s.res.Agent
	in := s.res.Input
	set := s.res.Settings

	s.updateLook(agent, in, set.MouseSensitivity, set.InvertMouse)
	s.updateStance(agent, in)
	s.updateHorizontal(agent, in, set.MovementSpeed)
	s.updateVertical(agent, in)
	s.updateFOV(agent)
}

func (s *AgentSystem) updateLook(agent *component.Agent, in *input.Snapshot, sensitivity float64, invert bool) {
	agent.Yaw += in.MouseDX * sensitivity

	pitchDelta := -in.MouseDY * sensitivity
	if invert {
		pitchDelta = -pitchDelta
	}
	agent.Pitch = vmath.Clamp(agent.Pitch+pitchDelta, -parameter.PitchLimit, parameter.PitchLimit)
}

func (s *AgentSystem) updateStance(agent *component.Agent, in *input.Snapshot) {
	agent.Crouching = in.Held[input.ActionCrouch]

	target := parameter.EyeHeightStanding
	if agent.Crouching {
		target = parameter.EyeHeightCrouched
	}
	wasAtTarget := agent.Position.Y == agent.EyeHeight
	agent.EyeHeight = vmath.LerpSnap(agent.EyeHeight, target, parameter.StanceLerpFactor, parameter.StanceSnapEpsilon)

	// Grounded agents follow the stance height directly
	if agent.OnGround && wasAtTarget {
		agent.Position.Y = agent.EyeHeight
	}
}

func (s *AgentSystem) updateHorizontal(agent *component.Agent, in *input.Snapshot, baseSpeed float64) {
	agent.Sprinting = in.Held[input.ActionSprint] && agent.OnGround && !agent.Crouching

	speed := baseSpeed
	switch {
	case agent.Sprinting:
		speed *= parameter.SprintSpeedFactor
	case agent.Crouching:
		speed *= parameter.CrouchSpeedFactor
	}

	// Desired velocity from the yaw-only basis vectors of the held keys
	forward := vmath.YawDir(agent.Yaw)
	right := vmath.Vec3{X: math.Cos(agent.Yaw), Z: math.Sin(agent.Yaw)}

	var desired vmath.Vec3
	if in.Held[input.ActionForward] {
		desired = vmath.Add(desired, forward)
	}
	if in.Held[input.ActionBack] {
		desired = vmath.Sub(desired, forward)
	}
	if in.Held[input.ActionRight] {
		desired = vmath.Add(desired, right)
	}
	if in.Held[input.ActionLeft] {
		desired = vmath.Sub(desired, right)
	}
	if vmath.MagSq(desired) > 0 {
		desired = vmath.Scale(vmath.Normalize(desired), speed)
	}

	hv := agent.HorizontalVel
	hv.X += (desired.X - hv.X) * parameter.MoveAccelFactor
	hv.Z += (desired.Z - hv.Z) * parameter.MoveAccelFactor
	hv.X *= parameter.MoveDecelFactor
	hv.Z *= parameter.MoveDecelFactor
	if vmath.HorizontalMag(hv) < parameter.MoveZeroSnap {
		hv.X, hv.Z = 0, 0
	}
	agent.Position.X += hv.X
	agent.Position.Z += hv.Z

	// Arena walls
	limit := parameter.WorldHalfExtent - parameter.AgentRadius
	if agent.Position.X > limit || agent.Position.X < -limit {
		agent.Position.X = vmath.Clamp(agent.Position.X, -limit, limit)
		hv.X = 0
	}
	if agent.Position.Z > limit || agent.Position.Z < -limit {
		agent.Position.Z = vmath.Clamp(agent.Position.Z, -limit, limit)
		hv.Z = 0
	}
	agent.HorizontalVel = hv
}

func (s *AgentSystem) updateVertical(agent *component.Agent, in *input.Snapshot) {
	jumpHeld := in.Held[input.ActionJump]
	if jumpHeld && !s.prevJump && agent.OnGround && !agent.Crouching {
		agent.VelY = parameter.JumpPower
		agent.OnGround = false
	}
	s.prevJump = jumpHeld

	// Asymmetric gravity: floaty rise, snappy fall
	g := parameter.Gravity
	if agent.VelY > 0 {
		g *= parameter.GravityAscendFactor
	} else {
		g *= parameter.GravityDescendFactor
	}
	agent.VelY -= g
	agent.Position.Y += agent.VelY

	if agent.Position.Y <= agent.EyeHeight {
		agent.Position.Y = agent.EyeHeight
		agent.VelY = 0
		agent.OnGround = true
	} else {
		agent.OnGround = false
	}
}

func (s *AgentSystem) updateFOV(agent *component.Agent) {
	var target float64
	switch {
	case agent.Zooming:
		target = -parameter.FOVZoomReduction
	case agent.Sprinting:
		target = parameter.FOVSprintKick
	}
	agent.FOVOffset = vmath.Lerp(agent.FOVOffset, target, parameter.FOVLerpFactor)
}

// Fire attempts a shot from the active weapon. Returns false without
// touching state when no weapon is equipped, the fire-rate cooldown
// has not elapsed, or ammo is exhausted
func (s *AgentSystem) Fire() bool {
	agent := s.res.Agent
	now := s.res.Time.Now

	weapon := agent.ActiveWeapon()
	if weapon == nil {
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDryFire})
		return false
	}

	stats := s.res.Catalog.Stats(weapon.Kind)
	if !agent.LastShotTime.IsZero() && now.Sub(agent.LastShotTime) < stats.FireInterval {
		return false
	}
	if weapon.Ammo <= 0 {
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDryFire})
		return false
	}

	weapon.Ammo--
	if weapon.Ammo < 0 {
		weapon.Ammo = 0
	}
	agent.LastShotTime = now

	aim := vmath.AimDir(agent.Yaw, agent.Pitch)
	s.world.PushEvent(event.EventBulletSpawnRequest, &event.BulletSpawnPayload{
		Origin:   vmath.Add(agent.Position, vmath.Scale(aim, parameter.MuzzleOffset)),
		Velocity: vmath.Scale(aim, stats.BulletSpeed),
		Damage:   stats.Damage,
		Kind:     weapon.Kind,
	})
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundFire})
	return true
}

// ThrowGrenade lobs a grenade along the aim direction. No-op with
// zero grenades held
func (s *AgentSystem) ThrowGrenade() bool {
	agent := s.res.Agent
	if agent.GrenadeCount <= 0 {
		return false
	}
	agent.GrenadeCount--

	aim := vmath.AimDir(agent.Yaw, agent.Pitch)
	vel := vmath.Scale(aim, parameter.GrenadeThrowSpeed)
	vel.Y += parameter.GrenadeThrowLift

	s.world.PushEvent(event.EventGrenadeSpawnRequest, &event.GrenadeSpawnPayload{
		Origin:   vmath.Add(agent.Position, vmath.Scale(aim, parameter.MuzzleOffset)),
		Velocity: vel,
	})
	return true
}
