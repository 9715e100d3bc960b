package engine

import "github.com/lixenwraith/shootbox/event"

// System is the per-frame simulation unit. The world dispatches queued
// events to EventTypes subscribers before running Updates in priority
// order, so a request pushed during frame N is handled at the start of
// frame N+1
type System interface {
	// Init restores the system to its initial configuration.
	// Called at construction and on EventGameReset; must be idempotent
	Init()

	Name() string

	// Priority orders Update calls, lower runs first
	Priority() int

	// EventTypes lists the event types this system subscribes to
	EventTypes() []event.EventType

	HandleEvent(ev event.GameEvent)

	Update()
}
