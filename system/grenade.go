package system

import (
	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/core"
	"github.com/lixenwraith/shootbox/engine"
	"github.com/lixenwraith/shootbox/event"
	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/physics"
	"github.com/lixenwraith/shootbox/vmath"
)

// GrenadeSystem integrates thrown grenades under full gravity, bounces
// them off the ground, and detonates each at its fuse deadline with
// distance-falloff damage and a radial push on the prop
type GrenadeSystem struct {
	world *engine.World
	res   *engine.Resources
}

func NewGrenadeSystem(world *engine.World) *GrenadeSystem {
	return &GrenadeSystem{world: world, res: world.Resources}
}

func (s *GrenadeSystem) Init() {
	s.world.Components.Grenade.ClearAllComponents()
}

func (s *GrenadeSystem) Name() string { return "grenade" }

func (s *GrenadeSystem) Priority() int { return parameter.PriorityGrenade }

func (s *GrenadeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventGrenadeSpawnRequest,
	}
}

func (s *GrenadeSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventGrenadeSpawnRequest:
		if p, ok := ev.Payload.(*event.GrenadeSpawnPayload); ok {
			e := s.world.CreateEntity()
			s.world.Components.Grenade.SetComponent(e, component.Grenade{
				Position: p.Origin,
				Velocity: p.Velocity,
				FuseTime: s.res.Time.Now.Add(parameter.GrenadeFuse),
			})
		}
	}
}

func (s *GrenadeSystem) Update() {
	now := s.res.Time.Now
	store := s.world.Components.Grenade

	var toDestroy []core.Entity
	for _, e := range store.GetAllEntities() {
		g, ok := store.GetComponent(e)
		if !ok {
			continue
		}

		g.Velocity.Y -= parameter.Gravity
		g.Position = vmath.Add(g.Position, g.Velocity)

		if physics.BounceGround(&g.Position, &g.Velocity,
			parameter.GrenadeRadius, parameter.GrenadeBounceRestitution, parameter.GrenadeBounceFriction) {
			s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundBounce})
		}

		if now.After(g.FuseTime) || now.Equal(g.FuseTime) {
			s.detonate(g.Position)
			toDestroy = append(toDestroy, e)
			continue
		}
		store.SetComponent(e, g)
	}

	for _, e := range toDestroy {
		s.world.DestroyEntity(e)
	}
}

func (s *GrenadeSystem) detonate(at vmath.Vec3) {
	prop := s.res.Prop

	d := vmath.Dist(at, prop.Position)
	if d < parameter.BlastRadius {
		falloff := 1 - d/parameter.BlastRadius

		away := vmath.Sub(prop.Position, at)
		if vmath.MagSq(away) > 0 {
			away = vmath.Normalize(away)
		}
		prop.Velocity = vmath.Add(prop.Velocity, vmath.Scale(away, parameter.BlastPushScale*falloff))
		prop.Velocity.Y += parameter.BlastUpwardPush * falloff

		damageProp(s.res, parameter.BlastMaxDamage*falloff)
	}

	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundBlast})
}
