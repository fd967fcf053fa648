package event

import "github.com/lixenwraith/gridstrike/parameter"

// Event is one queued game event
type Event struct {
	Type    Type
	Payload any
}

// Queue is a FIFO event buffer. The session core is single-threaded and
// cooperative, so no synchronization is needed: systems push during their
// update, the world drains between system passes
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, parameter.EventQueueInitialCap),
	}
}

// Push appends an event
func (q *Queue) Push(t Type, payload any) {
	q.events = append(q.events, Event{Type: t, Payload: payload})
}

// Drain returns all pending events in FIFO order and clears the queue.
// The returned slice is owned by the caller
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, parameter.EventQueueInitialCap)
	return out
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return len(q.events)
}
