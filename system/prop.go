package system

import (
	"math/rand"

	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/core"
	"github.com/lixenwraith/shootbox/engine"
	"github.com/lixenwraith/shootbox/event"
	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/physics"
	"github.com/lixenwraith/shootbox/vmath"
)

// PropSystem simulates the target cube: free-fall, ground friction,
// rest detection with rotation snap, hit flash decay and respawn on
// destruction
type PropSystem struct {
	world *engine.World
	res   *engine.Resources
}

func NewPropSystem(world *engine.World) *PropSystem {
	s := &PropSystem{world: world, res: world.Resources}
	s.Init()
	return s
}

func (s *PropSystem) Init() {
	*s.res.Prop = component.Prop{
		Kinetic: core.Kinetic{
			Position: vmath.Vec3{X: 0, Y: parameter.PropSize / 2, Z: -4},
		},
		Health: parameter.PropMaxHealth,
		Size:   parameter.PropSize,
	}
}

func (s *PropSystem) Name() string { return "prop" }

func (s *PropSystem) Priority() int { return parameter.PriorityProp }

func (s *PropSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *PropSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *PropSystem) Update() {
	prop := s.res.Prop
	half := prop.Size / 2

	prop.Velocity.Y -= parameter.Gravity
	prop.Position = vmath.Add(prop.Position, prop.Velocity)
	prop.Rotation = vmath.Add(prop.Rotation, prop.AngularVel)

	grounded := false
	if prop.Position.Y <= half {
		prop.Position.Y = half
		if prop.Velocity.Y < 0 {
			prop.Velocity.Y = 0
		}
		grounded = true
	}

	// Arena walls stop the cube dead
	limit := parameter.WorldHalfExtent - half
	if prop.Position.X > limit || prop.Position.X < -limit {
		prop.Position.X = vmath.Clamp(prop.Position.X, -limit, limit)
		prop.Velocity.X = 0
	}
	if prop.Position.Z > limit || prop.Position.Z < -limit {
		prop.Position.Z = vmath.Clamp(prop.Position.Z, -limit, limit)
		prop.Velocity.Z = 0
	}

	if grounded {
		prop.Velocity.X *= parameter.PropLinearFriction
		prop.Velocity.Z *= parameter.PropLinearFriction
		prop.AngularVel = vmath.Scale(prop.AngularVel, parameter.PropAngularFriction)

		if physics.AtRest(prop.Velocity, prop.AngularVel, parameter.PropRestLinearSpeed, parameter.PropRestAngularSpeed) {
			prop.Velocity.X, prop.Velocity.Z = 0, 0
			prop.AngularVel = vmath.Vec3{}
			physics.SnapRotation(&prop.Rotation, parameter.PropSnapLerpFactor, parameter.PropSnapEpsilon)
		}
	}

	if prop.Hit && s.res.Time.Now.Sub(prop.HitTime) >= parameter.HitFlashDuration {
		prop.Hit = false
	}
}

// damageProp applies damage to the prop, marks the hit flash, and
// respawns it when health is exhausted. Shared by bullets and blasts
func damageProp(res *engine.Resources, damage float64) {
	prop := res.Prop
	prop.Health -= damage
	if prop.Health < 0 {
		prop.Health = 0
	}
	prop.Hit = true
	prop.HitTime = res.Time.Now

	if prop.Health <= 0 {
		respawnProp(prop)
	}
}

// respawnProp places the prop at a fresh random arena position, fully
// healed and at rest
func respawnProp(prop *component.Prop) {
	prop.Position = vmath.Vec3{
		X: (rand.Float64()*2 - 1) * parameter.PropRespawnHalfExtent,
		Y: prop.Size / 2,
		Z: (rand.Float64()*2 - 1) * parameter.PropRespawnHalfExtent,
	}
	prop.Velocity = vmath.Vec3{}
	prop.Rotation = vmath.Vec3{}
	prop.AngularVel = vmath.Vec3{}
	prop.Health = parameter.PropMaxHealth
	prop.Hit = false
}
