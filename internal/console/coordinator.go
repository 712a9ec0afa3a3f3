package console

import (
	"github.com/zjrosen/tailconsole/internal/log"
)

// View is the UI side of the console.
type View interface {
	// AppendVisible adds text to the displayed buffer without altering
	// existing content.
	AppendVisible(text string)
	// ScrollTo jumps to the top or bottom of the content.
	ScrollTo(pos Position)
	// Geometry reports the current viewport and content dimensions.
	Geometry() Geometry
}

// Coordinator decides when the view must be forced to the bottom and keeps
// State.ScrolledToBottom in sync with the real geometry.
type Coordinator struct {
	state *State
	view  View
}

// NewCoordinator returns a Coordinator driving view.
func NewCoordinator(state *State, view View) *Coordinator {
	return &Coordinator{state: state, view: view}
}

// IsAtBottom evaluates the current view geometry.
func (c *Coordinator) IsAtBottom() bool {
	return IsAtBottom(c.view.Geometry())
}

// Following reports the last computed scrolled-to-bottom flag.
func (c *Coordinator) Following() bool {
	return c.state.ScrolledToBottom
}

// OnUserScroll records the scroll position after any scroll change.
func (c *Coordinator) OnUserScroll() {
	c.refresh()
}

// OnLayoutChanged re-follows the output after a geometry change, but only
// if the view was following before it. A user who scrolled away is left
// where they are.
func (c *Coordinator) OnLayoutChanged() {
	if c.state.ScrolledToBottom && !c.IsAtBottom() {
		log.Debug(log.CatScroll, "layout moved view off bottom, re-following")
		c.view.ScrollTo(Bottom)
	}
	c.refresh()
}

// AppendAndFollow appends text and always snaps the view to the bottom.
func (c *Coordinator) AppendAndFollow(text string) {
	c.view.AppendVisible(text)
	c.view.ScrollTo(Bottom)
	c.refresh()
}

// ScrollToTop jumps to the first line.
func (c *Coordinator) ScrollToTop() {
	c.view.ScrollTo(Top)
	c.refresh()
}

// ScrollToBottom jumps to the last line.
func (c *Coordinator) ScrollToBottom() {
	c.view.ScrollTo(Bottom)
	c.refresh()
}

func (c *Coordinator) refresh() {
	c.state.ScrolledToBottom = c.IsAtBottom()
}
