package engine

import (
	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/core"
	"github.com/lixenwraith/shootbox/event"
)

// ComponentStore groups the typed stores for all transient entities.
// The agent and prop are singletons and live in Resources instead
type ComponentStore struct {
	Bullet  *Store[component.Bullet]
	Grenade *Store[component.Grenade]
	Pickup  *Store[component.PickupPoint]
	Dropped *Store[component.DroppedWeapon]
}

// World is the single mutable simulation aggregate: entity stores,
// singleton resources and the event queue. Exactly one update pass
// runs per frame; all mutation within a frame is strictly ordered by
// system priority
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resources
	Events     *event.EventQueue

	systems  []System
	handlers map[event.EventType][]System
	frame    int64
}

// NewWorld creates a world with empty stores
func NewWorld(res *Resources) *World {
	return &World{
		nextEntityID: 1,
		Components: ComponentStore{
			Bullet:  NewStore[component.Bullet](),
			Grenade: NewStore[component.Grenade](),
			Pickup:  NewStore[component.PickupPoint](),
			Dropped: NewStore[component.DroppedWeapon](),
		},
		Resources: res,
		Events:    event.NewEventQueue(),
		handlers:  make(map[event.EventType][]System),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes the entity from every store
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.Bullet.RemoveEntity(e)
	w.Components.Grenade.RemoveEntity(e)
	w.Components.Pickup.RemoveEntity(e)
	w.Components.Dropped.RemoveEntity(e)
}

// AddSystem registers a system, keeps the update order sorted by
// priority, and subscribes it to its event types
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	for _, t := range s.EventTypes() {
		w.handlers[t] = append(w.handlers[t], s)
	}
}

// Systems returns the registered systems in update order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame,
	})
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.frame
}

// Update runs one simulation frame: dispatch all queued events to
// their subscribers in delivery order, then run each system's Update
// by priority. Events pushed during this frame are dispatched next
// frame, so a bullet spawned now is first integrated a frame later
func (w *World) Update() {
	w.frame++

	for _, ev := range w.Events.Consume() {
		for _, s := range w.handlers[ev.Type] {
			s.HandleEvent(ev)
		}
	}

	for _, s := range w.systems {
		s.Update()
	}
}

// Reset queues a full restore to initial configuration; every system
// re-runs Init at the start of the next Update. Safe to call
// repeatedly; Init is idempotent and stores are cleared, never
// leaking stale entries across resets
func (w *World) Reset() {
	w.PushEvent(event.EventGameReset, nil)
}
