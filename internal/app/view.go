package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/tailconsole/internal/ui/styles"
)

// maxNameWidth caps the source label in the menu bar.
const maxNameWidth = 40

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var rows []string
	if m.cfg.UI.ShowMenu {
		rows = append(rows, m.renderMenu())
	}
	rows = append(rows, m.pane.View())
	if m.showStatus {
		rows = append(rows, m.renderStatus())
	}
	view := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if m.showHelp {
		view = m.help.Overlay(view)
	}
	return zone.Scan(view)
}

// renderMenu draws the [Top] [Bottom] buttons, the source name and the
// scroll indicator.
func (m Model) renderMenu() string {
	topStyle, bottomStyle := styles.MenuButtonStyle, styles.MenuButtonStyle
	if m.Following() {
		bottomStyle = styles.MenuButtonActiveStyle
	} else if m.pane.Geometry().ScrollOffset == 0 {
		topStyle = styles.MenuButtonActiveStyle
	}

	top := zone.Mark(zoneTop, topStyle.Render("Top"))
	bottom := zone.Mark(zoneBottom, bottomStyle.Render("Bottom"))
	left := top + " " + bottom + " " + styles.HintStyle.Render(ansi.Truncate(m.src.Name(), maxNameWidth, "…"))

	right := m.pane.ScrollIndicator()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderStatus draws the follow state, the producer status and a help hint.
func (m Model) renderStatus() string {
	var follow string
	switch {
	case m.console == nil:
		follow = styles.PausedStyle.Render("suspended")
	case m.console.Following():
		follow = styles.FollowingStyle.Render("● following")
	default:
		follow = styles.PausedStyle.Render("‖ paused")
	}

	status := m.src.Name() + " running"
	if m.summary != "" {
		status = m.summary
	}

	left := follow + "  " + styles.HintStyle.Render(status)
	right := styles.HintStyle.Render("? help")
	inner := m.width - styles.StatusBarStyle.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.StatusBarStyle.Render(ansi.Truncate(left, max(inner, 0), "…"))
	}
	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}
