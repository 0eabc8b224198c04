package midi

import (
	"sync"
)

// QueueCapacity is the number of events a queue holds between buffers
const QueueCapacity = 128

// EventQueue is a fixed-capacity queue of host events. The host thread adds
// events; the audio thread drains them once per buffer. It never allocates
// after construction.
type EventQueue struct {
	events [QueueCapacity]Event
	n      int
	mu     sync.Mutex
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Add inserts an event ordered by sample offset, keeping arrival order for
// equal offsets. It returns false when the queue is full.
func (q *EventQueue) Add(event Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.n == QueueCapacity {
		return false
	}

	i := q.n
	for i > 0 && q.events[i-1].SampleOffset() > event.SampleOffset() {
		q.events[i] = q.events[i-1]
		i--
	}
	q.events[i] = event
	q.n++
	return true
}

// Drain calls fn for each queued event in offset order and empties the queue
func (q *EventQueue) Drain(fn func(Event)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := 0; i < q.n; i++ {
		fn(q.events[i])
		q.events[i] = nil
	}
	q.n = 0
}

// Size returns the number of queued events
func (q *EventQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}
