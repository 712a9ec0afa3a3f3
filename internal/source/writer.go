package source

import (
	"sync"
	"unicode/utf8"

	"github.com/zjrosen/tailconsole/internal/pubsub"
)

// ForwardingWriter is an io.Writer that publishes every write as a console
// fragment. A multi-byte rune split across two writes is held back and sent
// with the following write, so fragments are always valid UTF-8 when the
// input is.
type ForwardingWriter struct {
	mu    sync.Mutex
	pub   pubsub.Publisher[string]
	carry []byte
}

// NewForwardingWriter returns a writer publishing to pub.
func NewForwardingWriter(pub pubsub.Publisher[string]) *ForwardingWriter {
	return &ForwardingWriter{pub: pub}
}

// Write implements io.Writer. It never fails.
func (w *ForwardingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Empty writes are forwarded as-is; the console drops them.
	if len(p) == 0 && len(w.carry) == 0 {
		w.pub.Publish(pubsub.FragmentEvent, "")
		return 0, nil
	}

	buf := append(w.carry, p...)
	cut := incompleteSuffix(buf)
	w.carry = append([]byte(nil), buf[cut:]...)

	if cut > 0 {
		w.pub.Publish(pubsub.FragmentEvent, string(buf[:cut]))
	}
	return len(p), nil
}

// WriteString publishes s directly.
func (w *ForwardingWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Flush publishes any held-back bytes, even if they do not form a rune.
func (w *ForwardingWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.carry) > 0 {
		w.pub.Publish(pubsub.FragmentEvent, string(w.carry))
		w.carry = nil
	}
}

// incompleteSuffix returns the index where a trailing partial rune starts,
// or len(buf) if buf ends on a rune boundary.
func incompleteSuffix(buf []byte) int {
	for i := len(buf) - 1; i >= 0 && i >= len(buf)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(buf[i]) {
			continue
		}
		if utf8.FullRune(buf[i:]) {
			return len(buf)
		}
		return i
	}
	return len(buf)
}
