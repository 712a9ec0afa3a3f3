package console

import (
	"github.com/zjrosen/tailconsole/internal/log"
)

// Console is one console session: a State shared by its Buffer and
// Coordinator, bound to a View.
type Console struct {
	state       *State
	buffer      *Buffer
	coordinator *Coordinator
}

// New creates a fresh console session on view.
func New(view View, follow bool) *Console {
	return newConsole(NewState(follow), view)
}

// Restore rebuilds a console session from a snapshot, typically after the
// previous view was torn down. The caller should follow up with
// OnLayoutChanged once the new view has its size.
func Restore(snap Snapshot, view View) *Console {
	state := &State{}
	state.Restore(snap)
	return newConsole(state, view)
}

func newConsole(state *State, view View) *Console {
	return &Console{
		state:       state,
		buffer:      NewBuffer(state),
		coordinator: NewCoordinator(state, view),
	}
}

// Append is the inbound entry point for one output fragment.
func (c *Console) Append(text string) {
	visible, ok := c.buffer.Normalize(text)
	if !ok {
		return
	}
	c.coordinator.AppendAndFollow(visible)
}

// SaveState returns a snapshot of the session flags.
func (c *Console) SaveState() Snapshot {
	return c.state.Snapshot()
}

// RestoreState replaces the session flags with snap.
func (c *Console) RestoreState(snap Snapshot) {
	log.Debug(log.CatState, "restoring console state",
		"pending_newline", snap.PendingNewline,
		"scrolled_to_bottom", snap.ScrolledToBottom)
	c.state.Restore(snap)
}

// State returns a copy of the current flags.
func (c *Console) State() State {
	return *c.state
}

// OnUserScroll forwards to the Coordinator.
func (c *Console) OnUserScroll() { c.coordinator.OnUserScroll() }

// OnLayoutChanged forwards to the Coordinator.
func (c *Console) OnLayoutChanged() { c.coordinator.OnLayoutChanged() }

// ScrollToTop forwards to the Coordinator.
func (c *Console) ScrollToTop() { c.coordinator.ScrollToTop() }

// ScrollToBottom forwards to the Coordinator.
func (c *Console) ScrollToBottom() { c.coordinator.ScrollToBottom() }

// Following reports whether the view is tracking new output.
func (c *Console) Following() bool { return c.coordinator.Following() }
