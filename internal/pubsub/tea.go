package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// DrainedMsg is returned by ListenCmd once the consumer has nothing more to
// deliver: the source was closed and emptied, or the context ended.
type DrainedMsg struct{}

// ListenCmd creates a Bubble Tea command that waits for the next event.
// Returns the event as a tea.Msg when received.
func ListenCmd[T any](ctx context.Context, c Consumer[T]) tea.Cmd {
	return func() tea.Msg {
		event, ok := c.Next(ctx)
		if !ok {
			return DrainedMsg{}
		}
		return event
	}
}

// ContinuousListener maintains consumer state for the Bubble Tea update loop.
// Only one Listen command may be outstanding at a time; that is what keeps
// events in order.
type ContinuousListener[T any] struct {
	ctx      context.Context
	consumer Consumer[T]
}

// NewContinuousListener creates a listener reading from consumer.
func NewContinuousListener[T any](ctx context.Context, consumer Consumer[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{
		ctx:      ctx,
		consumer: consumer,
	}
}

// Listen returns a tea.Cmd that waits for the next event.
// Call this method in your Update function after handling an event
// to continue receiving events.
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	return ListenCmd(l.ctx, l.consumer)
}
