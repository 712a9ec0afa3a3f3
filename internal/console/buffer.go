package console

import "strings"

// lineTerminator is the only sequence treated as end of line.
const lineTerminator = "\n"

// Buffer turns raw fragments into visible appends.
//
// A trailing line terminator is held back until the next non-empty fragment
// arrives, so a paused producer never leaves a blank line at the bottom of
// the buffer. The same fragment can therefore produce different output
// depending on what came before it.
type Buffer struct {
	state *State
}

// NewBuffer returns a Buffer operating on state.
func NewBuffer(state *State) *Buffer {
	return &Buffer{state: state}
}

// Normalize applies fragment to the pending-newline state and returns the
// text to display. emit is false when there is nothing to show.
func (b *Buffer) Normalize(fragment string) (visible string, emit bool) {
	if len(fragment) == 0 {
		return "", false
	}

	if b.state.PendingNewline {
		fragment = lineTerminator + fragment
		b.state.PendingNewline = false
	}
	if strings.HasSuffix(fragment, lineTerminator) {
		fragment = strings.TrimSuffix(fragment, lineTerminator)
		b.state.PendingNewline = true
	}

	return fragment, len(fragment) > 0
}

// PendingNewline reports whether a terminator is currently withheld.
func (b *Buffer) PendingNewline() bool {
	return b.state.PendingNewline
}
