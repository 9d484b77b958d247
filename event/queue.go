package event

import "github.com/lixenwraith/farmstead/parameter"

// Queue is a FIFO buffer of events for one session
// Single-threaded: producers and the consumer both run on the tick goroutine
type Queue struct {
	events []GameEvent
}

func NewQueue() *Queue {
	return &Queue{
		events: make([]GameEvent, 0, parameter.EventQueueCapacity),
	}
}

// Push appends an event
func (q *Queue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
// Events pushed by handlers during dispatch are kept for the next Consume
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return len(q.events)
}

// Clear drops all pending events
func (q *Queue) Clear() {
	q.events = q.events[:0]
}
