package events

import (
	"iter"

	"github.com/lixenwraith/vi-snake/constants"
)

// DefaultQueueCapacity is the ring size when none is configured
const DefaultQueueCapacity = constants.EventQueueCapacity

// EventQueue is a fixed-size ring of game events
// Thread-Safety: none, owned by the game loop
//
// Overflow: the oldest unread event is overwritten and the read cursor moves
// past it, so the queue always holds the most recent capacity events in FIFO order
type EventQueue struct {
	slots       []GameEvent
	filled      []bool // True = slot holds an unread event
	read        int
	write       int
	overwritten uint64
}

// NewEventQueue creates a queue with capacity slots, minimum 1
func NewEventQueue(capacity int) *EventQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &EventQueue{
		slots:  make([]GameEvent, capacity),
		filled: make([]bool, capacity),
	}
}

// Push stores event, overwriting the oldest one when full
func (q *EventQueue) Push(event GameEvent) {
	// write slot is only occupied when the ring is full
	full := q.filled[q.write]

	q.slots[q.write] = event
	q.filled[q.write] = true
	q.write = (q.write + 1) % len(q.slots)

	if full {
		q.read = q.write
		q.overwritten++
	}
}

// Pop removes the oldest event
// Empty is read == write with a vacant slot; a full ring has read == write too
func (q *EventQueue) Pop() (GameEvent, bool) {
	if !q.filled[q.read] {
		return GameEvent{}, false
	}
	ev := q.slots[q.read]
	q.slots[q.read] = GameEvent{}
	q.filled[q.read] = false
	q.read = (q.read + 1) % len(q.slots)
	return ev, true
}

// Peek returns the oldest event without removing it
func (q *EventQueue) Peek() (GameEvent, bool) {
	if !q.filled[q.read] {
		return GameEvent{}, false
	}
	return q.slots[q.read], true
}

// Drain yields the events queued when iteration starts, removing each as it goes
// Events pushed during iteration stay queued for the next drain
func (q *EventQueue) Drain() iter.Seq[GameEvent] {
	return func(yield func(GameEvent) bool) {
		for n := q.Len(); n > 0; n-- {
			ev, ok := q.Pop()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	n := q.Len()
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, 0, n)
	for ev := range q.Drain() {
		out = append(out, ev)
	}
	return out
}

// Clear drops every queued event
func (q *EventQueue) Clear() {
	clear(q.slots)
	clear(q.filled)
	q.read = 0
	q.write = 0
}

func (q *EventQueue) IsEmpty() bool {
	return !q.filled[q.read]
}

// Len returns the number of unread events
func (q *EventQueue) Len() int {
	if q.IsEmpty() {
		return 0
	}
	if q.read == q.write {
		return len(q.slots)
	}
	return (q.write - q.read + len(q.slots)) % len(q.slots)
}

func (q *EventQueue) Capacity() int {
	return len(q.slots)
}

// Overwritten counts events lost to overflow since creation
func (q *EventQueue) Overwritten() uint64 {
	return q.overwritten
}
