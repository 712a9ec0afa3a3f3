package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/tailconsole/internal/log"
)

// ErrNotRegular is returned when the tailed path is not a regular file.
var ErrNotRegular = errors.New("not a regular file")

// DefaultPollInterval is the fallback re-check period for filesystems that
// do not deliver change notifications.
const DefaultPollInterval = 2 * time.Second

// Tail follows a growing file, forwarding bytes as they are appended.
// The containing directory is watched so that the file being replaced
// (log rotation) or truncated is picked up.
type Tail struct {
	Path      string
	FromStart bool          // forward existing content first
	Poll      time.Duration // fallback re-check period, 0 for DefaultPollInterval
	ChunkSize int
}

// Name implements Source.
func (t *Tail) Name() string {
	return "tail " + t.Path
}

// Run implements Source. It only returns when ctx is done or the file
// cannot be read.
func (t *Tail) Run(ctx context.Context, w *ForwardingWriter) error {
	info, err := os.Stat(t.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", t.Path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("tailing %s: %w", t.Path, ErrNotRegular)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	dir := filepath.Dir(t.Path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	f := &follower{path: t.Path, chunk: t.ChunkSize}
	if err := f.open(t.FromStart); err != nil {
		return err
	}
	defer f.close()

	poll := t.Poll
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	if err := f.drain(ctx, w); err != nil {
		return err
	}

	base := filepath.Base(t.Path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			switch {
			case event.Op&fsnotify.Create != 0:
				// Replaced by a new file: start over at its beginning
				log.Debug(log.CatSource, "tailed file recreated", "path", t.Path)
				f.close()
				if err := f.open(true); err != nil {
					log.Warn(log.CatSource, "reopen failed, waiting", "path", t.Path, "error", err)
					continue
				}
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				log.Debug(log.CatSource, "tailed file went away", "path", t.Path)
				continue
			case event.Op&fsnotify.Write == 0:
				continue
			}
			if err := f.drain(ctx, w); err != nil {
				return err
			}

		case <-ticker.C:
			if err := f.drain(ctx, w); err != nil {
				return err
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.ErrorErr(log.CatSource, "fsnotify error", err, "path", t.Path)
		}
	}
}

// follower tracks the open file and read offset of a Tail.
type follower struct {
	path   string
	chunk  int
	file   *os.File
	offset int64
}

func (f *follower) open(fromStart bool) error {
	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", f.path, err)
	}
	offset := int64(0)
	if !fromStart {
		offset, err = file.Seek(0, io.SeekEnd)
		if err != nil {
			_ = file.Close()
			return fmt.Errorf("seeking %s: %w", f.path, err)
		}
	}
	f.file = file
	f.offset = offset
	return nil
}

func (f *follower) close() {
	if f.file != nil {
		_ = f.file.Close()
		f.file = nil
	}
}

// drain forwards everything between the current offset and EOF.
func (f *follower) drain(ctx context.Context, w io.Writer) error {
	if f.file == nil {
		return nil
	}
	info, err := f.file.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", f.path, err)
	}
	if info.Size() < f.offset {
		log.Debug(log.CatSource, "tailed file truncated", "path", f.path)
		f.offset = 0
	}
	if info.Size() == f.offset {
		return nil
	}

	section := io.NewSectionReader(f.file, f.offset, info.Size()-f.offset)
	counter := &countingWriter{w: w}
	err = Pump(ctx, section, counter, f.chunk)
	f.offset += counter.n
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
