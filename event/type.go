package event

// EventType represents the type of game event
type EventType int

const (
	// === Lifecycle ===

	// EventGameReset restores every system to its initial configuration
	// Trigger: restart command, menu return
	// Consumer: all systems | Payload: nil
	EventGameReset EventType = iota

	// === Input commands ===
	// Discrete edge-triggered actions from the input layer, delivered
	// as an ordered sequence consumed once per frame

	// EventCommandFire requests a shot from the active weapon
	// Consumer: AgentSystem | Payload: nil
	EventCommandFire

	// EventCommandDrop ejects the active weapon
	// Consumer: InventorySystem | Payload: nil
	EventCommandDrop

	// EventCommandSwitchSlot selects a carry slot, empty or not
	// Consumer: InventorySystem | Payload: *SwitchSlotPayload
	EventCommandSwitchSlot

	// EventCommandThrowGrenade throws a grenade if any are held
	// Consumer: AgentSystem | Payload: nil
	EventCommandThrowGrenade

	// EventCommandZoom begins or ends aiming zoom
	// Consumer: AgentSystem | Payload: *ZoomPayload
	EventCommandZoom

	// EventCommandPickup forces an immediate proximity pickup check
	// Consumer: PickupSystem | Payload: nil
	EventCommandPickup

	// === Cross-system requests ===

	// EventBulletSpawnRequest hands a fired bullet to the projectile system
	// Trigger: AgentSystem on accepted shot
	// Consumer: ProjectileSystem | Payload: *BulletSpawnPayload
	EventBulletSpawnRequest

	// EventGrenadeSpawnRequest hands a thrown grenade to the grenade system
	// Trigger: AgentSystem on accepted throw
	// Consumer: GrenadeSystem | Payload: *GrenadeSpawnPayload
	EventGrenadeSpawnRequest

	// EventPickupRequest applies the inventory pickup transition
	// Trigger: PickupSystem when a source is consumed
	// Consumer: InventorySystem | Payload: *PickupPayload
	EventPickupRequest

	// EventSoundRequest requests audio playback
	// Trigger: any system needing audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
