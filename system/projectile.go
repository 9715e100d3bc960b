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

// ProjectileSystem spawns bullets from fire requests and integrates
// them along straight lines until they hit the prop, touch the
// ground, leave the arena or expire
type ProjectileSystem struct {
	world *engine.World
	res   *engine.Resources
}

func NewProjectileSystem(world *engine.World) *ProjectileSystem {
	return &ProjectileSystem{world: world, res: world.Resources}
}

func (s *ProjectileSystem) Init() {
	s.world.Components.Bullet.ClearAllComponents()
}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventBulletSpawnRequest,
	}
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventBulletSpawnRequest:
		if p, ok := ev.Payload.(*event.BulletSpawnPayload); ok {
			s.spawn(p)
		}
	}
}

func (s *ProjectileSystem) spawn(p *event.BulletSpawnPayload) {
	e := s.world.CreateEntity()
	s.world.Components.Bullet.SetComponent(e, component.Bullet{
		Position:   p.Origin,
		Velocity:   p.Velocity,
		Damage:     p.Damage,
		Kind:       p.Kind,
		ExpireTime: s.res.Time.Now.Add(parameter.BulletLifetime),
	})
}

func (s *ProjectileSystem) Update() {
	prop := s.res.Prop
	now := s.res.Time.Now
	store := s.world.Components.Bullet

	var toDestroy []core.Entity
	for _, e := range store.GetAllEntities() {
		bullet, ok := store.GetComponent(e)
		if !ok {
			continue
		}

		bullet.Position = vmath.Add(bullet.Position, bullet.Velocity)

		switch {
		case physics.ContainsAABB(prop.Position, prop.Size/2, bullet.Position):
			s.hitProp(&bullet)
			toDestroy = append(toDestroy, e)
		case bullet.Position.Y <= parameter.GroundY,
			now.After(bullet.ExpireTime) || now.Equal(bullet.ExpireTime),
			!insideArena(bullet.Position):
			toDestroy = append(toDestroy, e)
		default:
			store.SetComponent(e, bullet)
		}
	}

	for _, e := range toDestroy {
		s.world.DestroyEntity(e)
	}
}

func (s *ProjectileSystem) hitProp(bullet *component.Bullet) {
	prop := s.res.Prop

	dir := vmath.Normalize(bullet.Velocity)
	prop.Velocity = vmath.Add(prop.Velocity, vmath.Scale(dir, parameter.BulletHitImpulse))
	prop.AngularVel.X += dir.Z * parameter.BulletHitImpulse * parameter.BulletHitTorque
	prop.AngularVel.Z -= dir.X * parameter.BulletHitImpulse * parameter.BulletHitTorque

	damageProp(s.res, bullet.Damage)
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundHit})
}

func insideArena(p vmath.Vec3) bool {
	return physics.ContainsAABB(vmath.Vec3{}, parameter.WorldHalfExtent, vmath.Vec3{X: p.X, Z: p.Z})
}
