// Package pubsub carries events from producer goroutines to the Bubble Tea
// update loop.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// FragmentEvent carries one chunk of producer output.
	FragmentEvent EventType = "fragment"
	// ClosedEvent is published once when a producer finishes. Its payload
	// is a short human-readable reason.
	ClosedEvent EventType = "closed"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}

// Consumer yields events one at a time, blocking until one is available.
// ok is false once the source is closed and drained, or ctx is done.
type Consumer[T any] interface {
	Next(ctx context.Context) (event Event[T], ok bool)
}
