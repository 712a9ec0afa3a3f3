package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReceivesEvent(t *testing.T) {
	q := NewQueue[string]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q.Publish(FragmentEvent, "hello world")

	cmd := ListenCmd[string](ctx, q)
	msg := cmd()

	event, ok := msg.(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "hello world", event.Payload)
	require.Equal(t, FragmentEvent, event.Type)
}

func TestListenCmd_ContextCancelled(t *testing.T) {
	q := NewQueue[string]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := ListenCmd[string](ctx, q)()

	require.Equal(t, DrainedMsg{}, msg)
}

func TestListenCmd_QueueClosed(t *testing.T) {
	q := NewQueue[string]()
	q.Close()

	msg := ListenCmd[string](context.Background(), q)()

	require.Equal(t, DrainedMsg{}, msg)
}

func TestContinuousListener_Listen(t *testing.T) {
	q := NewQueue[int]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener[int](ctx, q)

	q.Publish(FragmentEvent, 1)
	q.Publish(FragmentEvent, 2)
	q.Publish(ClosedEvent, 3)

	for _, want := range []struct {
		payload int
		typ     EventType
	}{{1, FragmentEvent}, {2, FragmentEvent}, {3, ClosedEvent}} {
		msg := listener.Listen()()
		event, ok := msg.(Event[int])
		require.True(t, ok, "msg should be Event[int]")
		require.Equal(t, want.payload, event.Payload)
		require.Equal(t, want.typ, event.Type)
	}
}
