// Package consoleview renders console output in a scrollable, framed
// viewport and exposes the geometry the scroll logic needs.
package consoleview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/zjrosen/tailconsole/internal/console"
	"github.com/zjrosen/tailconsole/internal/ui/styles"
)

// tabWidth matches lipgloss' tab expansion.
const tabWidth = 4

// Config controls how the pane is drawn.
type Config struct {
	Wrap    bool // soft-wrap long lines to the pane width
	Border  bool
	Padding int // blank rows above and below the content
}

// Model is the console pane. It must be used through a pointer: the
// console.Coordinator keeps a reference to it.
type Model struct {
	cfg      Config
	frame    lipgloss.Style
	viewport viewport.Model

	width  int // outer width including frame
	height int // outer height including frame

	lines    []string // logical lines; the last one is still open
	rendered []string // display rows per logical line, joined with \n
}

var _ console.View = (*Model)(nil)

// New creates an empty pane.
func New(cfg Config) *Model {
	return &Model{
		cfg:      cfg,
		frame:    styles.PaneStyle(cfg.Border, cfg.Padding),
		viewport: viewport.New(0, 0),
	}
}

// SetSize updates the outer dimensions of the pane. Rows are re-wrapped when
// the content width changes. Callers should notify the console of the
// layout change afterwards.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)

	innerWidth := max(m.width-m.frame.GetHorizontalFrameSize(), 0)
	innerHeight := max(m.height-m.frame.GetVerticalFrameSize(), 0)
	widthChanged := innerWidth != m.viewport.Width

	m.viewport.Width = innerWidth
	m.viewport.Height = innerHeight

	if widthChanged {
		for i := range m.lines {
			m.rendered[i] = m.renderLine(m.lines[i])
		}
	}
	m.syncContent()
	// Re-clamp the offset for the new height.
	m.viewport.SetYOffset(m.viewport.YOffset)
}

// Size returns the outer dimensions.
func (m *Model) Size() (int, int) {
	return m.width, m.height
}

// AppendVisible implements console.View.
func (m *Model) AppendVisible(text string) {
	if len(m.lines) == 0 {
		m.lines = []string{""}
		m.rendered = []string{""}
	}

	parts := strings.Split(text, "\n")
	last := len(m.lines) - 1
	m.lines[last] += parts[0]
	m.rendered[last] = m.renderLine(m.lines[last])

	for _, p := range parts[1:] {
		m.lines = append(m.lines, p)
		m.rendered = append(m.rendered, m.renderLine(p))
	}
	m.syncContent()
}

// ScrollTo implements console.View.
func (m *Model) ScrollTo(pos console.Position) {
	switch pos {
	case console.Top:
		m.viewport.GotoTop()
	case console.Bottom:
		m.viewport.GotoBottom()
	}
}

// Geometry implements console.View.
func (m *Model) Geometry() console.Geometry {
	return console.Geometry{
		ViewportHeight: m.height,
		TopInset:       m.frame.GetBorderTopSize() + m.frame.GetPaddingTop(),
		BottomInset:    m.frame.GetBorderBottomSize() + m.frame.GetPaddingBottom(),
		ContentHeight:  m.rows(),
		ScrollOffset:   m.viewport.YOffset,
	}
}

// ScrollBy moves the view n rows down (negative for up).
func (m *Model) ScrollBy(n int) {
	if n < 0 {
		m.viewport.ScrollUp(-n)
	} else if n > 0 {
		m.viewport.ScrollDown(n)
	}
}

// PageUp scrolls up one page.
func (m *Model) PageUp() { m.viewport.PageUp() }

// PageDown scrolls down one page.
func (m *Model) PageDown() { m.viewport.PageDown() }

// HalfPageUp scrolls up half a page.
func (m *Model) HalfPageUp() { m.viewport.HalfPageUp() }

// HalfPageDown scrolls down half a page.
func (m *Model) HalfPageDown() { m.viewport.HalfPageDown() }

// Lines returns the logical lines, for tests and debugging.
func (m *Model) Lines() []string {
	return append([]string(nil), m.lines...)
}

// Text returns the whole buffer as one string.
func (m *Model) Text() string {
	return strings.Join(m.lines, "\n")
}

// ScrollIndicator returns "↑NN%" while scrolled up from the bottom of
// content that does not fit, and "" otherwise.
func (m *Model) ScrollIndicator() string {
	g := m.Geometry()
	if g.MaxScroll() == 0 || console.IsAtBottom(g) {
		return ""
	}
	percent := float64(g.ScrollOffset) / float64(g.MaxScroll()) * 100
	return fmt.Sprintf("↑%.0f%%", percent)
}

// View renders the framed viewport.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	// lipgloss Width excludes the border but includes padding.
	innerWidth := m.width - m.frame.GetHorizontalBorderSize()
	innerHeight := m.height - m.frame.GetVerticalBorderSize()
	return m.frame.
		Width(max(innerWidth, 0)).
		Height(max(innerHeight, 0)).
		Render(m.viewport.View())
}

// rows counts display rows. An empty buffer has none.
func (m *Model) rows() int {
	if len(m.lines) == 0 {
		return 0
	}
	n := 0
	for _, r := range m.rendered {
		n += strings.Count(r, "\n") + 1
	}
	return n
}

func (m *Model) syncContent() {
	if len(m.rendered) == 0 {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(styles.OutputStyle.Render(strings.Join(m.rendered, "\n")))
}

// renderLine turns one logical line into display rows. Escape sequences
// are stripped and a carriage return discards what precedes it, so
// progress-bar style output shows only its latest state.
func (m *Model) renderLine(line string) string {
	line = ansi.Strip(line)
	if i := strings.LastIndexByte(line, '\r'); i >= 0 {
		line = line[i+1:]
	}
	line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))

	if !m.cfg.Wrap || m.viewport.Width <= 0 {
		return line
	}
	// Break at spaces first, then split words longer than the pane.
	return wrap.String(wordwrap.String(line, m.viewport.Width), m.viewport.Width)
}
