package source

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// DefaultChunkSize bounds how much output goes into one fragment.
const DefaultChunkSize = 4096

// Reader forwards everything read from R, such as a piped stdin.
type Reader struct {
	Label     string
	R         io.Reader
	ChunkSize int
}

// Name implements Source.
func (r *Reader) Name() string {
	if r.Label == "" {
		return "stdin"
	}
	return r.Label
}

// Run implements Source. It returns nil at EOF. Cancellation is observed
// between reads; a read that is already blocked finishes first.
func (r *Reader) Run(ctx context.Context, w *ForwardingWriter) error {
	return Pump(ctx, r.R, w, r.ChunkSize)
}

// Pump copies src to w one read at a time, so each read becomes one
// fragment and output shows up as soon as it is produced.
func Pump(ctx context.Context, src io.Reader, w io.Writer, chunk int) error {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	buf := make([]byte, chunk)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("forwarding output: %w", werr)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading output: %w", err)
		}
	}
}
