// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#CCCCCC"} // Console output
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // Status line
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	// Semantic color names - Overlay
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Following
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Paused, new output
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Producer failed

	// Button colors
	ButtonTextColor     = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonBgColor       = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonActiveBgColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
)

var (
	baseButtonStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)

	// MenuButtonStyle renders the [Top] / [Bottom] buttons.
	MenuButtonStyle = baseButtonStyle.
			Foreground(ButtonTextColor).
			Background(ButtonBgColor)

	// MenuButtonActiveStyle marks the button matching the current position.
	MenuButtonActiveStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonActiveBgColor).
				Underline(true)

	// OutputStyle is applied to console text.
	OutputStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)

	// StatusBarStyle is the base style of the bottom status line.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	FollowingStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	PausedStyle    = lipgloss.NewStyle().Foreground(StatusWarningColor).Bold(true)
	ErrorStyle     = lipgloss.NewStyle().Foreground(StatusErrorColor)
	HintStyle      = lipgloss.NewStyle().Foreground(TextMutedColor)
)

// PaneStyle returns the frame around the console output. The vertical frame
// size of this style is what the scroll math treats as insets.
func PaneStyle(border bool, padding int) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(padding, 1, padding, 1)
	if border {
		s = s.Border(lipgloss.RoundedBorder()).BorderForeground(BorderDefaultColor)
	}
	return s
}

// ApplyTheme applies custom theme colors from configuration.
// Empty strings are ignored, keeping the default values.
func ApplyTheme(muted, errorColor, success, warning string) {
	if muted != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
		BorderDefaultColor = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
		HintStyle = HintStyle.Foreground(TextMutedColor)
	}
	if errorColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
		ErrorStyle = ErrorStyle.Foreground(StatusErrorColor)
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
		FollowingStyle = FollowingStyle.Foreground(StatusSuccessColor)
	}
	if warning != "" {
		StatusWarningColor = lipgloss.AdaptiveColor{Light: warning, Dark: warning}
		PausedStyle = PausedStyle.Foreground(StatusWarningColor)
	}
}
