package system

import (
	"math/rand"

	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/engine"
	"github.com/lixenwraith/shootbox/event"
	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/physics"
	"github.com/lixenwraith/shootbox/vmath"
)

// pickupSpawns places one point per weapon kind, one near each arena
// corner
var pickupSpawns = [component.WeaponTypeCount]vmath.Vec3{
	{X: -6, Y: parameter.PickupRestHeight, Z: -6},
	{X: 6, Y: parameter.PickupRestHeight, Z: -6},
	{X: -6, Y: parameter.PickupRestHeight, Z: 6},
	{X: 6, Y: parameter.PickupRestHeight, Z: 6},
}

// PickupSystem maintains the weapon pickup field: the fixed points,
// dropped weapons settling on the ground, the idle display spin, and
// automatic proximity acquisition
type PickupSystem struct {
	world *engine.World
	res   *engine.Resources
}

func NewPickupSystem(world *engine.World) *PickupSystem {
	s := &PickupSystem{world: world, res: world.Resources}
	s.Init()
	return s
}

func (s *PickupSystem) Init() {
	s.world.Components.Pickup.ClearAllComponents()
	s.world.Components.Dropped.ClearAllComponents()

	for kind := component.WeaponType(0); kind < component.WeaponTypeCount; kind++ {
		e := s.world.CreateEntity()
		s.world.Components.Pickup.SetComponent(e, component.PickupPoint{
			SpawnPos: pickupSpawns[kind],
			Position: pickupSpawns[kind],
			Rotation: vmath.Vec3{Y: rand.Float64() * 6.28},
			Kind:     kind,
		})
	}
}

func (s *PickupSystem) Name() string { return "pickup" }

func (s *PickupSystem) Priority() int { return parameter.PriorityPickup }

func (s *PickupSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventCommandPickup,
	}
}

func (s *PickupSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventCommandPickup:
		s.tryAcquire()
	}
}

func (s *PickupSystem) Update() {
	s.settlePoints()
	s.settleDrops()
	s.tryAcquire()
}

// settlePoints pushes overlapped points away from the agent and lets
// displaced ones glide back to rest wherever they stop
func (s *PickupSystem) settlePoints() {
	agent := s.res.Agent
	store := s.world.Components.Pickup

	for _, e := range store.GetAllEntities() {
		p, ok := store.GetComponent(e)
		if !ok || p.Picked {
			continue
		}

		if n, _, hit := physics.CircleOverlap(agent.Position, p.Position, parameter.AgentRadius, parameter.PickupRadius/2); hit {
			p.Velocity.X += n.X * parameter.PickupPushImpulse
			p.Velocity.Z += n.Z * parameter.PickupPushImpulse
		}

		p.Position = vmath.Add(p.Position, p.Velocity)
		p.Velocity.X *= parameter.PickupLinearFriction
		p.Velocity.Z *= parameter.PickupLinearFriction
		if vmath.HorizontalMag(p.Velocity) < parameter.PickupRestLinearSpeed {
			p.Velocity.X, p.Velocity.Z = 0, 0
		}

		p.Rotation.Y += parameter.PickupSpinRate
		store.SetComponent(e, p)
	}
}

// settleDrops runs the full drop arc: gravity, landing at display
// height, ground friction until rest, then the idle spin
func (s *PickupSystem) settleDrops() {
	store := s.world.Components.Dropped

	for _, e := range store.GetAllEntities() {
		d, ok := store.GetComponent(e)
		if !ok {
			continue
		}

		d.Velocity.Y -= parameter.Gravity
		d.Position = vmath.Add(d.Position, d.Velocity)

		if d.Position.Y <= parameter.PickupRestHeight {
			d.Position.Y = parameter.PickupRestHeight
			d.Velocity.Y = 0
			d.Velocity.X *= parameter.PickupLinearFriction
			d.Velocity.Z *= parameter.PickupLinearFriction
			if vmath.HorizontalMag(d.Velocity) < parameter.PickupRestLinearSpeed {
				d.Velocity.X, d.Velocity.Z = 0, 0
			}
		}

		d.Rotation.Y += parameter.PickupSpinRate
		store.SetComponent(e, d)
	}
}

// tryAcquire grants at most one weapon per check pass: fixed points
// first with a full ammo load, then dropped weapons with whatever
// ammo they carried
func (s *PickupSystem) tryAcquire() {
	agent := s.res.Agent

	pickups := s.world.Components.Pickup
	for _, e := range pickups.GetAllEntities() {
		p, ok := pickups.GetComponent(e)
		if !ok || p.Picked {
			continue
		}
		if vmath.HorizontalDist(agent.Position, p.Position) > parameter.PickupRadius {
			continue
		}

		p.Picked = true
		pickups.SetComponent(e, p)
		s.world.PushEvent(event.EventPickupRequest, &event.PickupPayload{
			Kind: p.Kind,
			Ammo: s.res.Catalog.Stats(p.Kind).MaxAmmo,
		})
		return
	}

	drops := s.world.Components.Dropped
	for _, e := range drops.GetAllEntities() {
		d, ok := drops.GetComponent(e)
		if !ok {
			continue
		}
		if vmath.HorizontalDist(agent.Position, d.Position) > parameter.PickupRadius {
			continue
		}

		s.world.DestroyEntity(e)
		s.world.PushEvent(event.EventPickupRequest, &event.PickupPayload{
			Kind: d.Kind,
			Ammo: d.Ammo,
		})
		return
	}
}
