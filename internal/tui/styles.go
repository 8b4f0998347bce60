// Package tui provides the terminal user interface for fibstudy.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorDue       = lipgloss.Color("#3B82F6") // Blue
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for subtitles and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleSubject is used for subject names.
	StyleSubject = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleTopic is used for topic names.
	StyleTopic = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// StyleDue is used for due dates.
	StyleDue = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDue)

	// StyleOverdue is used for overdue entries.
	StyleOverdue = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// StyleSelected is used for the row under the cursor.
	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleFilter is used for the filter input line.
	StyleFilter = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for different sections.
var (
	// StyleScheduleBox frames the schedule list.
	StyleScheduleBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(1, 2).
				MarginBottom(1)
)

// FormatSubjectTopic formats "subject/topic" notation with styles.
func FormatSubjectTopic(subject, topic string) string {
	if topic == "" {
		return StyleSubject.Render(subject)
	}
	return StyleSubject.Render(subject) + "/" + StyleTopic.Render(topic)
}

// HelpBar renders the keyboard shortcut help line.
func HelpBar() string {
	shortcuts := []struct{ key, desc string }{
		{"type", "filter"},
		{"↑/↓", "move"},
		{"enter", "complete"},
		{"esc", "clear"},
		{"q", "quit"},
	}

	var out string
	for i, s := range shortcuts {
		if i > 0 {
			out += StyleHelpDesc.Render("  ·  ")
		}
		out += StyleHelpKey.Render(s.key) + StyleHelpDesc.Render(" "+s.desc)
	}
	return StyleHelp.Render(out)
}
