// Package source contains the output producers that feed a console: a child
// command, an arbitrary reader such as stdin, a followed file, and a demo
// generator. Producers run on their own goroutines and only ever talk to the
// console through a pubsub.Queue.
package source

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/zjrosen/tailconsole/internal/log"
	"github.com/zjrosen/tailconsole/internal/pubsub"
)

// Source produces console output until it is exhausted or ctx is done.
type Source interface {
	// Name is a short label used in the status line and logs.
	Name() string
	// Run writes output to w and blocks until the source is finished.
	Run(ctx context.Context, w *ForwardingWriter) error
}

// Start runs src on a new goroutine. When src returns, any held-back bytes
// are flushed, a ClosedEvent with a summary is published and q is closed.
func Start(ctx context.Context, src Source, q *pubsub.Queue[string]) {
	go func() {
		w := NewForwardingWriter(q)
		log.Info(log.CatSource, "source started", "name", src.Name())

		err := src.Run(ctx, w)
		w.Flush()

		summary := Summarize(src.Name(), err)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.ErrorErr(log.CatSource, "source failed", err, "name", src.Name())
		} else {
			log.Info(log.CatSource, "source finished", "name", src.Name())
		}

		q.Publish(pubsub.ClosedEvent, summary)
		q.Close()
	}()
}

// Summarize turns the result of Source.Run into a one-line status.
func Summarize(name string, err error) string {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return name + " finished"
	case errors.Is(err, context.Canceled):
		return name + " stopped"
	case errors.As(err, &exitErr):
		return fmt.Sprintf("%s exited with status %d", name, exitErr.ExitCode())
	default:
		return fmt.Sprintf("%s failed: %v", name, err)
	}
}
