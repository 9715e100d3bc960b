package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shootbox/event"
)

const (
	// KeyHoldDuration models a held key in a terminal: presses refresh
	// the expiry via auto-repeat, release is inferred by timeout
	KeyHoldDuration = 150 * time.Millisecond

	// Terminal cells are coarse; scale arrow and mouse steps up to a
	// useful look delta
	lookStepX = 12.0
	lookStepY = 6.0
)

// CommandSink receives discrete command events from the adapter.
// Wired to the world's event queue by the frame loop
type CommandSink func(t event.EventType, payload any)

// TerminalAdapter translates tcell events into held-control state and
// command events. Runs on the event-polling goroutine; ControlState
// and the event queue are both safe for that
type TerminalAdapter struct {
	controls *ControlState
	sink     CommandSink

	zoomed     bool
	haveMouse  bool
	lastMouseX int
	lastMouseY int
}

func NewTerminalAdapter(controls *ControlState, sink CommandSink) *TerminalAdapter {
	return &TerminalAdapter{controls: controls, sink: sink}
}

// HandleEvent processes one terminal event. Returns false when the
// player quits
func (a *TerminalAdapter) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev, now)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func (a *TerminalAdapter) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.controls.AddMouseDelta(0, -lookStepY)
		return true
	case tcell.KeyDown:
		a.controls.AddMouseDelta(0, lookStepY)
		return true
	case tcell.KeyLeft:
		a.controls.AddMouseDelta(-lookStepX, 0)
		return true
	case tcell.KeyRight:
		a.controls.AddMouseDelta(lookStepX, 0)
		return true
	case tcell.KeyEnter:
		a.sink(event.EventCommandFire, nil)
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'w', 'W':
		a.controls.Press(ActionForward, now, KeyHoldDuration)
	case 's', 'S':
		a.controls.Press(ActionBack, now, KeyHoldDuration)
	case 'a', 'A':
		a.controls.Press(ActionLeft, now, KeyHoldDuration)
	case 'd', 'D':
		a.controls.Press(ActionRight, now, KeyHoldDuration)
	case ' ':
		a.controls.Press(ActionJump, now, KeyHoldDuration)
	case 'c', 'C':
		a.controls.Press(ActionCrouch, now, KeyHoldDuration)
	case 'v', 'V':
		a.controls.Press(ActionSprint, now, KeyHoldDuration)
	case '1':
		a.sink(event.EventCommandSwitchSlot, &event.SwitchSlotPayload{Slot: 0})
	case '2':
		a.sink(event.EventCommandSwitchSlot, &event.SwitchSlotPayload{Slot: 1})
	case 'g', 'G':
		a.sink(event.EventCommandDrop, nil)
	case 'e', 'E':
		a.sink(event.EventCommandPickup, nil)
	case 'f', 'F':
		a.sink(event.EventCommandThrowGrenade, nil)
	case 'z', 'Z':
		a.zoomed = !a.zoomed
		a.sink(event.EventCommandZoom, &event.ZoomPayload{Active: a.zoomed})
	case 'r', 'R':
		a.controls.Reset()
		a.sink(event.EventGameReset, nil)
	}
	return true
}

func (a *TerminalAdapter) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if a.haveMouse {
		a.controls.AddMouseDelta(float64(x-a.lastMouseX)*lookStepX, float64(y-a.lastMouseY)*lookStepY)
	}
	a.haveMouse = true
	a.lastMouseX = x
	a.lastMouseY = y

	if ev.Buttons()&tcell.Button1 != 0 {
		a.sink(event.EventCommandFire, nil)
	}
}
