package input

import (
	"sync"
	"time"
)

// Action discriminates continuously-held controls. Discrete actions
// (fire, drop, switch, throw, zoom, pickup) travel as command events
// instead, preserving delivery order
type Action uint8

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionCrouch
	ActionSprint
	ActionCount
)

// Snapshot is the per-frame control intent handed to the simulation:
// currently-held actions plus the mouse delta accumulated since the
// previous frame. Zero deltas and repeated held states are valid
type Snapshot struct {
	Held             [ActionCount]bool
	MouseDX, MouseDY float64
}

// ControlState accumulates raw input between frames. The terminal
// adapter writes from its own goroutine; the frame loop drains one
// Snapshot per frame.
//
// Terminals deliver key presses without release events, so a held key
// is modeled as a press with an expiry refreshed by auto-repeat
type ControlState struct {
	mu        sync.Mutex
	heldUntil [ActionCount]time.Time
	mouseDX   float64
	mouseDY   float64
}

func NewControlState() *ControlState {
	return &ControlState{}
}

// Press marks an action held until now+hold, refreshed on repeat
func (c *ControlState) Press(a Action, now time.Time, hold time.Duration) {
	c.mu.Lock()
	c.heldUntil[a] = now.Add(hold)
	c.mu.Unlock()
}

// Release clears a held action immediately
func (c *ControlState) Release(a Action) {
	c.mu.Lock()
	c.heldUntil[a] = time.Time{}
	c.mu.Unlock()
}

// AddMouseDelta accumulates look movement for the next snapshot
func (c *ControlState) AddMouseDelta(dx, dy float64) {
	c.mu.Lock()
	c.mouseDX += dx
	c.mouseDY += dy
	c.mu.Unlock()
}

// Drain fills the per-frame snapshot and consumes the mouse delta
func (c *ControlState) Drain(now time.Time, snap *Snapshot) {
	c.mu.Lock()
	for a := Action(0); a < ActionCount; a++ {
		snap.Held[a] = now.Before(c.heldUntil[a])
	}
	snap.MouseDX = c.mouseDX
	snap.MouseDY = c.mouseDY
	c.mouseDX = 0
	c.mouseDY = 0
	c.mu.Unlock()
}

// Reset clears all held state and pending deltas
func (c *ControlState) Reset() {
	c.mu.Lock()
	c.heldUntil = [ActionCount]time.Time{}
	c.mouseDX = 0
	c.mouseDY = 0
	c.mu.Unlock()
}
