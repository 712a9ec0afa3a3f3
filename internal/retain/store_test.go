package retain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tailconsole/internal/console"
)

func TestStore_PutTake(t *testing.T) {
	s := New(time.Minute, time.Minute)
	snap := console.Snapshot{PendingNewline: true, ScrolledToBottom: true}

	require.NoError(t, s.Put("abc", snap))
	require.Equal(t, 1, s.Len())

	got, ok := s.Take("abc")
	require.True(t, ok)
	require.True(t, got.PendingNewline)
	require.True(t, got.ScrolledToBottom)

	// Take consumes the entry
	_, ok = s.Take("abc")
	require.False(t, ok)
	require.Equal(t, 0, s.Len())
}

func TestStore_PutReplaces(t *testing.T) {
	s := New(time.Minute, time.Minute)

	require.NoError(t, s.Put("abc", console.Snapshot{PendingNewline: true}))
	require.NoError(t, s.Put("abc", console.Snapshot{ScrolledToBottom: true}))

	got, ok := s.Take("abc")
	require.True(t, ok)
	require.False(t, got.PendingNewline)
	require.True(t, got.ScrolledToBottom)
}

func TestStore_EmptySession(t *testing.T) {
	s := New(time.Minute, time.Minute)
	require.ErrorIs(t, s.Put("", console.Snapshot{}), ErrEmptySession)
}

func TestStore_Discard(t *testing.T) {
	s := New(time.Minute, time.Minute)
	require.NoError(t, s.Put("abc", console.Snapshot{}))

	s.Discard("abc")

	_, ok := s.Take("abc")
	require.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	s := New(10*time.Millisecond, time.Hour)
	require.NoError(t, s.Put("abc", console.Snapshot{PendingNewline: true}))

	time.Sleep(30 * time.Millisecond)

	_, ok := s.Take("abc")
	require.False(t, ok)
}

func TestStore_UnreadableEntry(t *testing.T) {
	s := New(time.Minute, time.Minute)
	s.cache.SetDefault("abc", []byte("version: 99\n"))
	s.cache.SetDefault("def", "not bytes")

	_, ok := s.Take("abc")
	require.False(t, ok)
	_, ok = s.Take("def")
	require.False(t, ok)
}
