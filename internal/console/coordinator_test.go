package console

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordinator_AppendAlwaysFollows(t *testing.T) {
	view := newFakeView(3)
	view.setLines(10)
	state := &State{ScrolledToBottom: false}
	c := NewCoordinator(state, view)

	// User is at the top, not following.
	require.False(t, c.IsAtBottom())

	c.AppendAndFollow("\nmore")

	require.Equal(t, []string{"\nmore"}, view.appends)
	require.Equal(t, []Position{Bottom}, view.scrolls)
	require.True(t, state.ScrolledToBottom)
	require.Equal(t, 8, view.offset)
}

func TestCoordinator_LayoutChangeRefollows(t *testing.T) {
	view := newFakeView(5)
	view.setLines(20)
	state := &State{}
	c := NewCoordinator(state, view)
	c.ScrollToBottom()
	view.resetCommands()
	require.True(t, state.ScrolledToBottom)

	// Viewport shrinks (keyboard shown): offset no longer reaches the bottom.
	view.height = 3
	require.False(t, c.IsAtBottom())

	c.OnLayoutChanged()

	require.Equal(t, []Position{Bottom}, view.scrolls)
	require.True(t, state.ScrolledToBottom)
	require.True(t, c.IsAtBottom())
}

func TestCoordinator_LayoutChangeRespectsScrolledAway(t *testing.T) {
	view := newFakeView(5)
	view.setLines(20)
	state := &State{}
	c := NewCoordinator(state, view)
	c.ScrollToTop()
	view.resetCommands()

	for _, h := range []int{3, 10, 40} {
		view.height = h
		c.OnLayoutChanged()
	}

	require.Empty(t, view.scrolls)
	// Once the viewport grows past the content, the top is also the bottom.
	require.True(t, state.ScrolledToBottom)
}

func TestCoordinator_LayoutChangeStillAtBottomIssuesNothing(t *testing.T) {
	view := newFakeView(5)
	view.setLines(20)
	state := &State{}
	c := NewCoordinator(state, view)
	c.ScrollToBottom()
	view.resetCommands()

	// Growing the viewport keeps the bottom visible.
	view.height = 8
	c.OnLayoutChanged()

	require.Empty(t, view.scrolls)
	require.True(t, state.ScrolledToBottom)
}

func TestCoordinator_UserScrollUpdatesFlag(t *testing.T) {
	view := newFakeView(5)
	view.setLines(20)
	state := &State{}
	c := NewCoordinator(state, view)
	c.ScrollToBottom()

	view.offset = 3
	c.OnUserScroll()
	require.False(t, state.ScrolledToBottom)

	view.offset = 15
	c.OnUserScroll()
	require.True(t, state.ScrolledToBottom)
}

func TestCoordinator_ScrollToTop(t *testing.T) {
	t.Run("long content", func(t *testing.T) {
		view := newFakeView(5)
		view.setLines(20)
		state := &State{ScrolledToBottom: true}
		c := NewCoordinator(state, view)

		c.ScrollToTop()

		require.Equal(t, []Position{Top}, view.scrolls)
		require.False(t, state.ScrolledToBottom)
	})

	t.Run("content fits", func(t *testing.T) {
		view := newFakeView(5)
		view.setLines(2)
		state := &State{}
		c := NewCoordinator(state, view)

		c.ScrollToTop()

		require.True(t, state.ScrolledToBottom)
	})
}

func TestCoordinator_ScrollToBottomIdempotent(t *testing.T) {
	view := newFakeView(5)
	view.setLines(20)
	state := &State{}
	c := NewCoordinator(state, view)

	c.ScrollToBottom()
	once := *state
	offsetOnce := view.offset

	c.ScrollToBottom()

	require.Equal(t, []Position{Bottom, Bottom}, view.scrolls)
	require.Equal(t, once, *state)
	require.Equal(t, offsetOnce, view.offset)
	require.True(t, state.ScrolledToBottom)
}
