package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tailconsole/internal/pubsub"
)

// collect drains q until it closes and returns the fragment text and the
// closing summary.
func collect(t *testing.T, q *pubsub.Queue[string]) (string, string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var text strings.Builder
	summary := ""
	for {
		event, ok := q.Next(ctx)
		if !ok {
			require.NoError(t, ctx.Err(), "timed out waiting for source")
			return text.String(), summary
		}
		switch event.Type {
		case pubsub.FragmentEvent:
			text.WriteString(event.Payload)
		case pubsub.ClosedEvent:
			summary = event.Payload
		}
	}
}

func TestSummarize(t *testing.T) {
	require.Equal(t, "demo finished", Summarize("demo", nil))
	require.Equal(t, "demo stopped", Summarize("demo", context.Canceled))
	require.Equal(t, "demo failed: boom", Summarize("demo", errors.New("boom")))
}

func TestStart_Reader(t *testing.T) {
	q := pubsub.NewQueue[string]()

	Start(context.Background(), &Reader{R: strings.NewReader("one\ntwo\n"), ChunkSize: 3}, q)
	text, summary := collect(t, q)

	require.Equal(t, "one\ntwo\n", text)
	require.Equal(t, "stdin finished", summary)
	require.True(t, q.Closed())
}

func TestPump_ChunksReads(t *testing.T) {
	rec := &recorder{}
	w := NewForwardingWriter(rec)

	err := Pump(context.Background(), strings.NewReader("abcdefg"), w, 3)

	require.NoError(t, err)
	require.Equal(t, []string{"abc", "def", "g"}, rec.fragments())
}

func TestPump_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Pump(ctx, strings.NewReader("never read"), NewForwardingWriter(&recorder{}), 0)

	require.ErrorIs(t, err, context.Canceled)
}

func TestCommand_ForwardsBothStreams(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	q := pubsub.NewQueue[string]()

	Start(context.Background(), ShellCommand("sh", "echo out; echo err 1>&2; exit 3"), q)
	text, summary := collect(t, q)

	require.Contains(t, text, "out\n")
	require.Contains(t, text, "err\n")
	require.Equal(t, "sh -c echo out; echo err 1>&2; exit 3 exited with status 3", summary)
}

func TestCommand_Empty(t *testing.T) {
	err := (&Command{}).Run(context.Background(), NewForwardingWriter(&recorder{}))
	require.ErrorIs(t, err, ErrNoCommand)
	require.Equal(t, "command", (&Command{}).Name())
}

func TestCommand_MissingBinary(t *testing.T) {
	q := pubsub.NewQueue[string]()

	Start(context.Background(), &Command{Args: []string{"/definitely/not/here"}}, q)
	_, summary := collect(t, q)

	require.Contains(t, summary, "failed: starting /definitely/not/here")
}

func TestDemo_RunsScriptOnce(t *testing.T) {
	q := pubsub.NewQueue[string]()

	Start(context.Background(), &Demo{Interval: time.Millisecond, Loops: 1}, q)
	text, summary := collect(t, q)

	require.True(t, strings.HasPrefix(text, "--- run 1 ---\n"))
	require.Contains(t, text, "loading... done\n")
	require.Equal(t, "demo finished", summary)
}

func TestDemo_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := pubsub.NewQueue[string]()

	Start(ctx, &Demo{Interval: time.Hour}, q)
	cancel()
	_, summary := collect(t, q)

	require.Equal(t, "demo stopped", summary)
}

func TestTail_NotRegular(t *testing.T) {
	err := (&Tail{Path: t.TempDir()}).Run(context.Background(), NewForwardingWriter(&recorder{}))
	require.ErrorIs(t, err, ErrNotRegular)
}

func TestTail_Missing(t *testing.T) {
	err := (&Tail{Path: filepath.Join(t.TempDir(), "nope.log")}).Run(context.Background(), NewForwardingWriter(&recorder{}))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTail_FollowsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q := pubsub.NewQueue[string]()
	Start(ctx, &Tail{Path: path, FromStart: true, Poll: 50 * time.Millisecond}, q)

	waitFor := func(want string) {
		t.Helper()
		var got strings.Builder
		deadline, stop := context.WithTimeout(ctx, 5*time.Second)
		defer stop()
		for !strings.Contains(got.String(), want) {
			event, ok := q.Next(deadline)
			require.True(t, ok, "timed out waiting for %q, have %q", want, got.String())
			got.WriteString(event.Payload)
		}
	}

	waitFor("old\n")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("new line\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	waitFor("new line\n")

	// Truncate and rewrite: reading restarts at the beginning.
	require.NoError(t, os.WriteFile(path, []byte("fresh\n"), 0o600))
	waitFor("fresh\n")
}
