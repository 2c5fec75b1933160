package editor

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorAccent  = lipgloss.Color("39")  // blue
	colorMuted   = lipgloss.Color("242") // gray
	colorWhite   = lipgloss.Color("15")
	colorError   = lipgloss.Color("196") // bright red
	colorWarning = lipgloss.Color("214") // orange
	colorSuccess = lipgloss.Color("76")  // green
)

// Styles for the editor TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	positionStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	coachBadgeStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	// Form field styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true).
				Width(12)

	// Order summary pane
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	summaryItemStyle = lipgloss.NewStyle().
				Foreground(colorWhite)

	summaryPriceStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	summaryTotalStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSuccess)

	noOrderStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	unknownCodeStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Status bar
	statusStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
