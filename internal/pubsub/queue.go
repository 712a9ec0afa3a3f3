package pubsub

import (
	"context"
	"sync"
	"time"

	"github.com/zyedidia/generic/queue"
)

// Queue is an unbounded FIFO of events with a single consumer.
//
// Unlike a fan-out broker, Publish never drops: console output must arrive
// complete and in order, so a slow consumer only grows the backlog.
type Queue[T any] struct {
	mu     sync.Mutex
	items  *queue.Queue[Event[T]]
	size   int
	closed bool
	notify chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		items:  queue.New[Event[T]](),
		notify: make(chan struct{}, 1),
	}
}

// Publish appends an event. It never blocks. Events published after Close
// are discarded.
func (q *Queue[T]) Publish(eventType EventType, payload T) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items.Enqueue(Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	})
	q.size++
	q.mu.Unlock()

	q.wake()
}

// Close stops accepting events. Events already queued are still delivered.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.wake()
}

// Next removes and returns the oldest event, waiting for one if needed.
// It returns ok=false when the queue is closed and empty, or ctx is done.
func (q *Queue[T]) Next(ctx context.Context) (Event[T], bool) {
	for {
		q.mu.Lock()
		if !q.items.Empty() {
			event := q.items.Dequeue()
			q.size--
			q.mu.Unlock()
			return event, true
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			return Event[T]{}, false
		}

		select {
		case <-ctx.Done():
			return Event[T]{}, false
		case <-q.notify:
		}
	}
}

// Len returns the number of queued events.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

func (q *Queue[T]) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
		// A wakeup is already pending
	}
}
