package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tmkelleher/fibstudy/internal/model"
	"github.com/tmkelleher/fibstudy/internal/planner"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorSuccess   = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleSubject = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleTopic = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleOverdue = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// SubjectName formats a subject name.
func (c *CLIFormatter) SubjectName(name string) string {
	if c.IsColorEnabled() {
		return styleSubject.Render(name)
	}
	return name
}

// TopicName formats a topic name.
func (c *CLIFormatter) TopicName(name string) string {
	if c.IsColorEnabled() {
		return styleTopic.Render(name)
	}
	return name
}

// DueDate formats a due date, highlighting overdue entries.
func (c *CLIFormatter) DueDate(due, now time.Time) string {
	text := FormatRelativeDays(due, now)
	if c.IsColorEnabled() && due.Before(now) {
		return styleOverdue.Render(text)
	}
	return text
}

// FormatSubjectTopic formats "subject/topic" notation.
func (c *CLIFormatter) FormatSubjectTopic(subject, topic string) string {
	if topic == "" {
		return c.SubjectName(subject)
	}
	return c.SubjectName(subject) + "/" + c.TopicName(topic)
}

// PrintSubjectCreated prints a subject creation confirmation.
func (c *CLIFormatter) PrintSubjectCreated(subject *model.Subject) {
	c.Success(fmt.Sprintf("Added subject %s", c.SubjectName(subject.Name)))
	c.Printf("  UID: %s\n", subject.UID)
	c.Printf("  Weight: %g  Bias: %d\n", subject.Weight, subject.Bias)
}

// PrintTopicCreated prints a topic creation confirmation.
func (c *CLIFormatter) PrintTopicCreated(topic *model.Topic, subject *model.Subject) {
	c.Success(fmt.Sprintf("Added topic %s", c.FormatSubjectTopic(subject.Name, topic.Name)))
	c.Printf("  UID: %s\n", topic.UID)
	c.Printf("  Last studied: %s\n", FormatTime(topic.LastStudy))
}

// PrintTopicCompleted prints a review completion confirmation.
func (c *CLIFormatter) PrintTopicCompleted(topic *model.Topic, subject *model.Subject, due time.Time) {
	c.Success(fmt.Sprintf("Completed %s", c.FormatSubjectTopic(subject.Name, topic.Name)))
	c.Printf("  Reviews: %d\n", topic.FibNumber-model.DefaultFibNumber)
	c.Printf("  Next review: %s (%s)\n", FormatDate(due), FormatRelativeDays(due, time.Now()))
}

// PrintSubjectList prints all subjects as a table.
func (c *CLIFormatter) PrintSubjectList(subjects []*model.Subject, topicCounts map[string]int) {
	if len(subjects) == 0 {
		c.Muted("No subjects yet.")
		c.Muted("Use 'fibstudy subject add <name>' to create one.")
		return
	}

	rows := make([]TableRow, len(subjects))
	for i, s := range subjects {
		rows[i] = TableRow{Columns: []string{
			s.Name,
			fmt.Sprintf("%g", s.Weight),
			fmt.Sprintf("%d", s.Bias),
			fmt.Sprintf("%d", topicCounts[string(s.UID)]),
		}}
	}
	c.PrintTable([]string{"SUBJECT", "WEIGHT", "BIAS", "TOPICS"}, rows)
}

// PrintTopicList prints the topics of one subject as a table.
func (c *CLIFormatter) PrintTopicList(subject *model.Subject, topics []*model.Topic) {
	if len(topics) == 0 {
		c.Muted(fmt.Sprintf("No topics under %s yet.", subject.Name))
		return
	}

	c.Title(subject.Name)
	rows := make([]TableRow, len(topics))
	for i, t := range topics {
		rows[i] = TableRow{Columns: []string{
			t.Name,
			FormatDate(t.LastStudy),
			fmt.Sprintf("%d", t.FibNumber),
		}}
	}
	c.PrintTable([]string{"TOPIC", "LAST STUDIED", "INTERVAL INDEX"}, rows)
}

// PrintSchedule prints the review schedule as a table.
func (c *CLIFormatter) PrintSchedule(entries []planner.Entry, now time.Time) {
	if len(entries) == 0 {
		c.Muted("Nothing scheduled.")
		c.Muted("Use 'fibstudy topic add <name> --subject <subject>' to start tracking.")
		return
	}

	rows := make([]TableRow, len(entries))
	for i, e := range entries {
		rows[i] = TableRow{Columns: []string{
			e.Subject.Name,
			e.Topic.Name,
			FormatDate(e.Topic.LastStudy),
			FormatDate(e.Due),
			c.DueDate(e.Due, now),
		}}
	}
	c.PrintTable([]string{"SUBJECT", "TOPIC", "LAST STUDIED", "DUE", "WHEN"}, rows)
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	if c.IsColorEnabled() {
		c.Println(styleBold.Render(headerLine.String()))
	} else {
		c.Println(headerLine.String())
	}

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(rowLine.String())
	}
}
