// Package app contains the root application model.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/tailconsole/internal/config"
	"github.com/zjrosen/tailconsole/internal/console"
	"github.com/zjrosen/tailconsole/internal/keys"
	"github.com/zjrosen/tailconsole/internal/log"
	"github.com/zjrosen/tailconsole/internal/pubsub"
	"github.com/zjrosen/tailconsole/internal/retain"
	"github.com/zjrosen/tailconsole/internal/source"
	"github.com/zjrosen/tailconsole/internal/ui/consoleview"
	"github.com/zjrosen/tailconsole/internal/ui/help"
)

// Zone IDs for the menu buttons.
const (
	zoneTop    = "menu-top"
	zoneBottom = "menu-bottom"
)

// wheelStep is how many rows one mouse wheel notch scrolls.
const wheelStep = 3

// Model is the root application state.
type Model struct {
	cfg  config.Config
	keys keys.KeyMap
	help help.Model

	// Console session. console is nil while the program is suspended;
	// fragments arriving in that window wait in held until resume.
	session string
	console *console.Console
	held    []string
	pane    *consoleview.Model
	store   *retain.Store

	// Producer plumbing
	src      source.Source
	queue    *pubsub.Queue[string]
	listener *pubsub.ContinuousListener[string]
	ctx      context.Context
	cancel   context.CancelFunc

	// Producer status
	summary string // set once the producer has closed
	drained bool

	// Chrome
	width      int
	height     int
	showStatus bool
	showHelp   bool
}

// New creates the application model for src. The producer is started by
// Init.
func New(cfg config.Config, src source.Source) Model {
	ctx, cancel := context.WithCancel(context.Background())
	queue := pubsub.NewQueue[string]()
	pane := consoleview.New(consoleview.Config{
		Wrap:    cfg.Console.Wrap,
		Border:  cfg.Console.Border,
		Padding: cfg.Console.Padding,
	})
	km := keys.DefaultKeyMap()
	km.Suspend.SetEnabled(canSuspend)

	m := Model{
		cfg:        cfg,
		keys:       km,
		help:       help.New(km),
		session:    uuid.NewString(),
		console:    console.New(pane, cfg.Console.FollowOnStart),
		pane:       pane,
		store:      retain.New(cfg.State.RetainTTL, retain.DefaultCleanupInterval),
		src:        src,
		queue:      queue,
		listener:   pubsub.NewContinuousListener[string](ctx, queue),
		ctx:        ctx,
		cancel:     cancel,
		showStatus: cfg.UI.ShowStatusBar,
	}
	log.Info(log.CatUI, "console session created",
		"session", m.session,
		"source", src.Name(),
		"follow", cfg.Console.FollowOnStart)
	return m
}

// Init implements tea.Model. It starts the producer and begins listening
// for its output.
func (m Model) Init() tea.Cmd {
	source.Start(m.ctx, m.src, m.queue)
	return m.listener.Listen()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help = m.help.SetSize(msg.Width, msg.Height)
		m.relayout()
		return m, nil

	case pubsub.Event[string]:
		return m.handleEvent(msg)

	case pubsub.DrainedMsg:
		m.drained = true
		log.Debug(log.CatSource, "producer drained", "session", m.session)
		return m, nil

	case tea.ResumeMsg:
		m.resume()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleEvent(event pubsub.Event[string]) (tea.Model, tea.Cmd) {
	switch event.Type {
	case pubsub.FragmentEvent:
		if m.console == nil {
			m.held = append(m.held, event.Payload)
			break
		}
		m.console.Append(event.Payload)
	case pubsub.ClosedEvent:
		m.summary = event.Payload
		log.Info(log.CatSource, "producer closed", "summary", event.Payload)
	}
	return m, m.listener.Listen()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}

	if m.console == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Top):
		m.console.ScrollToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.console.ScrollToBottom()
	case key.Matches(msg, m.keys.Up):
		m.scroll(-1)
	case key.Matches(msg, m.keys.Down):
		m.scroll(1)
	case key.Matches(msg, m.keys.PageUp):
		m.pane.PageUp()
		m.console.OnUserScroll()
	case key.Matches(msg, m.keys.PageDown):
		m.pane.PageDown()
		m.console.OnUserScroll()
	case key.Matches(msg, m.keys.HalfUp):
		m.pane.HalfPageUp()
		m.console.OnUserScroll()
	case key.Matches(msg, m.keys.HalfDown):
		m.pane.HalfPageDown()
		m.console.OnUserScroll()
	case key.Matches(msg, m.keys.ToggleStatus):
		m.showStatus = !m.showStatus
		m.relayout()
	case key.Matches(msg, m.keys.Suspend):
		return m.suspend()
	}
	return m, nil
}

// handleMouseMsg handles wheel scrolling and menu button clicks.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.console == nil || m.showHelp {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll(-wheelStep)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.scroll(wheelStep)
			return m, nil
		}
	}

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
		if z := zone.Get(zoneTop); z != nil && z.InBounds(msg) {
			log.Debug(log.CatUI, "menu click", "button", "top")
			m.console.ScrollToTop()
		} else if z := zone.Get(zoneBottom); z != nil && z.InBounds(msg) {
			log.Debug(log.CatUI, "menu click", "button", "bottom")
			m.console.ScrollToBottom()
		}
	}
	return m, nil
}

func (m Model) scroll(n int) {
	m.pane.ScrollBy(n)
	m.console.OnUserScroll()
}

// relayout resizes the pane to whatever the chrome leaves and lets the
// console re-follow if it was following.
func (m *Model) relayout() {
	m.pane.SetSize(m.width, max(m.height-m.chromeHeight(), 0))
	if m.console != nil {
		m.console.OnLayoutChanged()
	}
}

func (m Model) chromeHeight() int {
	h := 0
	if m.cfg.UI.ShowMenu {
		h++
	}
	if m.showStatus {
		h++
	}
	return h
}

// suspend parks the console state in the store and drops the session core
// before handing the terminal back to the shell.
func (m Model) suspend() (tea.Model, tea.Cmd) {
	if err := m.store.Put(m.session, m.console.SaveState()); err != nil {
		log.ErrorErr(log.CatState, "failed to retain console state", err, "session", m.session)
		return m, nil
	}
	m.console = nil
	log.Info(log.CatState, "suspending", "session", m.session)
	return m, tea.Suspend
}

// resume rebuilds the session core from the retained snapshot.
func (m *Model) resume() {
	snap, ok := m.store.Take(m.session)
	if !ok {
		log.Warn(log.CatState, "no retained state on resume, starting fresh", "session", m.session)
		m.console = console.New(m.pane, m.cfg.Console.FollowOnStart)
	} else {
		m.console = console.Restore(snap, m.pane)
	}
	m.relayout()
	for _, fragment := range m.held {
		m.console.Append(fragment)
	}
	log.Info(log.CatState, "resumed",
		"session", m.session,
		"replayed", len(m.held),
		"following", m.console.Following())
	m.held = nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	log.Info(log.CatUI, "quitting", "session", m.session)
	m.Close()
	return m, tea.Quit
}

// Close stops the producer and drops any retained state. Safe to call more
// than once.
func (m Model) Close() {
	m.store.Discard(m.session)
	m.cancel()
}

// Following reports whether the console is tracking new output.
func (m Model) Following() bool {
	return m.console != nil && m.console.Following()
}

// Summary returns the producer's closing summary, or "" while it runs.
func (m Model) Summary() string {
	return m.summary
}
