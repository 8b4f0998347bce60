package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmkelleher/fibstudy/internal/output"
	"github.com/tmkelleher/fibstudy/internal/planner"
)

// tickMsg is sent when the refresh timer ticks.
type tickMsg time.Time

// refreshMsg is sent when the schedule needs to be recomputed.
type refreshMsg struct{}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	planner  *planner.Planner
	entries  []planner.Entry
	filtered []planner.Entry

	// UI state
	filter     string
	cursor     int
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	refreshInterval time.Duration
	maxVisible      int
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Planner         *planner.Planner
	RefreshInterval time.Duration
	MaxVisible      int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = 30 * time.Second
	}
	if config.MaxVisible == 0 {
		config.MaxVisible = 15
	}

	return &DashboardModel{
		planner:         config.Planner,
		refreshInterval: config.RefreshInterval,
		maxVisible:      config.MaxVisible,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.loadSchedule()
		return m, m.tickCmd()

	case refreshMsg:
		m.loadSchedule()
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		m.completeSelected()
		return m, nil

	case "esc":
		m.filter = ""
		m.applyFilter()
		return m, nil

	case "backspace":
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				m.filter += string(r)
			}
		}
		m.applyFilter()
	}
	return m, nil
}

// completeSelected records a review for the topic under the cursor.
func (m *DashboardModel) completeSelected() {
	if m.cursor >= len(m.filtered) {
		return
	}
	entry := m.filtered[m.cursor]

	if err := m.planner.CompleteTopicAt(entry.Topic.UID, time.Now().UTC()); err != nil {
		m.err = err
		return
	}
	m.setMessage(fmt.Sprintf("Completed %s", entry.Topic.Name), 2*time.Second)
	m.loadSchedule()
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	// Header
	sections = append(sections, m.renderHeader())

	// Error message
	if m.err != nil {
		errBox := StyleError.Render(fmt.Sprintf("Error: %v", m.err))
		sections = append(sections, errBox)
	}

	// Status message
	if m.message != "" {
		msgBox := StyleWarning.Render(m.message)
		sections = append(sections, msgBox)
	}

	// Filter line
	sections = append(sections, StyleFilter.Render("filter: "+m.filter+"▌"))

	// Schedule list
	sections = append(sections, m.renderSchedule())

	// Help bar
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Fibstudy Dashboard")
	now := time.Now().Format("Mon Jan 2, 15:04")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// renderSchedule renders the filtered topic list.
func (m *DashboardModel) renderSchedule() string {
	if len(m.filtered) == 0 {
		if m.filter != "" {
			return StyleScheduleBox.Render(StyleSubtitle.Render("No topics match the filter."))
		}
		return StyleScheduleBox.Render(StyleSubtitle.Render("Nothing scheduled."))
	}

	now := time.Now()
	var lines []string
	for i, entry := range m.filtered {
		if i >= m.maxVisible {
			lines = append(lines, StyleSubtitle.Render(
				fmt.Sprintf("… and %d more", len(m.filtered)-m.maxVisible)))
			break
		}

		marker := "  "
		if i == m.cursor {
			marker = StyleSelected.Render("> ")
		}

		due := StyleDue.Render(output.FormatRelativeDays(entry.Due, now))
		if entry.Due.Before(now) {
			due = StyleOverdue.Render(output.FormatRelativeDays(entry.Due, now))
		}

		line := marker + FormatSubjectTopic(entry.Subject.Name, entry.Topic.Name) + "  " + due
		lines = append(lines, line)
	}

	return StyleScheduleBox.Render(strings.Join(lines, "\n"))
}

// loadSchedule recomputes the schedule and reapplies the filter.
func (m *DashboardModel) loadSchedule() {
	entries, err := m.planner.Schedule(time.Now().UTC())
	if err != nil {
		m.err = err
		return
	}
	m.entries = entries
	m.err = nil
	m.applyFilter()
}

// applyFilter narrows the entries to those matching the filter text
// and keeps the cursor in range.
func (m *DashboardModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.entries
	} else {
		m.filtered = nil
		for _, entry := range m.entries {
			target := entry.Subject.Name + "/" + entry.Topic.Name
			if fuzzyMatch(m.filter, target) {
				m.filtered = append(m.filtered, entry)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// fuzzyMatch reports whether pattern is a case-insensitive
// subsequence of s.
func fuzzyMatch(pattern, s string) bool {
	want := []rune(strings.ToLower(pattern))
	i := 0
	for _, r := range strings.ToLower(s) {
		if i < len(want) && want[i] == r {
			i++
		}
	}
	return i == len(want)
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
