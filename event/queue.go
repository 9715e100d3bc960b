package event

import "sync"

// EventQueue is an ordered FIFO of game events with a single consumer
// (the frame loop). Push order is delivery order, which the input
// layer relies on for its command sequence. The mutex covers the one
// cross-goroutine producer, the terminal input adapter; all simulation
// pushes happen on the frame goroutine
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, 64),
	}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.pending = append(eq.pending, ev)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and clears the queue.
// Events pushed during consumption are delivered next frame
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.pending) == 0 {
		return nil
	}
	out := eq.pending
	eq.pending = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.pending)
}
