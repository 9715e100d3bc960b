package system

import (
	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/core"
	"github.com/lixenwraith/shootbox/engine"
	"github.com/lixenwraith/shootbox/event"
	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/vmath"
)

// InventorySystem runs the two-slot weapon state machine: slot
// switching, dropping the active weapon into the world, and acquiring
// weapons from pickup requests
type InventorySystem struct {
	world *engine.World
	res   *engine.Resources
}

func NewInventorySystem(world *engine.World) *InventorySystem {
	return &InventorySystem{world: world, res: world.Resources}
}

func (s *InventorySystem) Init() {}

func (s *InventorySystem) Name() string { return "inventory" }

func (s *InventorySystem) Priority() int { return parameter.PriorityInventory }

func (s *InventorySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCommandSwitchSlot,
		event.EventCommandDrop,
		event.EventPickupRequest,
	}
}

func (s *InventorySystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventCommandSwitchSlot:
		if p, ok := ev.Payload.(*event.SwitchSlotPayload); ok {
			s.SwitchSlot(p.Slot)
		}
	case event.EventCommandDrop:
		s.Drop()
	case event.EventPickupRequest:
		if p, ok := ev.Payload.(*event.PickupPayload); ok {
			s.Acquire(p.Kind, p.Ammo)
		}
	}
}

func (s *InventorySystem) Update() {}

// SwitchSlot selects the given slot. Switching to an empty slot is
// allowed; the agent simply holds nothing
func (s *InventorySystem) SwitchSlot(slot int) {
	if slot < 0 || slot >= component.AgentSlots {
		return
	}
	s.res.Agent.ActiveSlot = slot
}

// Drop ejects the active weapon forward of the agent as a world
// entity, preserving its remaining ammo. No-op on an empty slot
func (s *InventorySystem) Drop() {
	agent := s.res.Agent
	weapon := agent.ActiveWeapon()
	if weapon == nil {
		return
	}

	s.spawnDrop(weapon.Kind, weapon.Ammo)
	agent.Slots[agent.ActiveSlot] = nil
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDrop})
}

// Acquire stows a weapon with the given ammo load. Fills the active
// slot first, then the other slot (switching to it), and with both
// slots full trades away the active weapon
func (s *InventorySystem) Acquire(kind component.WeaponType, ammo int) {
	agent := s.res.Agent

	slot := -1
	switch {
	case agent.Slots[agent.ActiveSlot] == nil:
		slot = agent.ActiveSlot
	case agent.Slots[1-agent.ActiveSlot] == nil:
		slot = 1 - agent.ActiveSlot
	default:
		held := agent.ActiveWeapon()
		s.spawnDrop(held.Kind, held.Ammo)
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundDrop})
		slot = agent.ActiveSlot
	}

	agent.Slots[slot] = &component.Weapon{Kind: kind, Ammo: ammo}
	agent.ActiveSlot = slot
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundPickup})
}

func (s *InventorySystem) spawnDrop(kind component.WeaponType, ammo int) {
	agent := s.res.Agent
	forward := vmath.YawDir(agent.Yaw)

	pos := vmath.Add(agent.Position, vmath.Scale(forward, parameter.DropForwardOffset))
	vel := vmath.Scale(forward, parameter.DropOutwardSpeed)
	vel.Y += parameter.DropUpwardSpeed

	e := s.world.CreateEntity()
	s.world.Components.Dropped.SetComponent(e, component.DroppedWeapon{
		Position: pos,
		Velocity: vel,
		Kind:     kind,
		Ammo:     ammo,
	})
}
