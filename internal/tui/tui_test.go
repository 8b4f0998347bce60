package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmkelleher/fibstudy/internal/fib"
	"github.com/tmkelleher/fibstudy/internal/planner"
	"github.com/tmkelleher/fibstudy/internal/store"
)

func newTestDashboard(t *testing.T) (*DashboardModel, *planner.Planner) {
	t.Helper()

	p := planner.New(store.New(), fib.New())
	subjectID, err := p.CreateSubject("Math", 1.0, 0)
	require.NoError(t, err)
	_, err = p.CreateTopic("Algebra", subjectID, time.Now().UTC())
	require.NoError(t, err)
	_, err = p.CreateTopic("Geometry", subjectID, time.Now().UTC())
	require.NoError(t, err)

	m := NewDashboardModel(DashboardConfig{Planner: p})
	m.width = 80
	m.height = 24
	m.loadSchedule()
	return m, p
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewDashboardModelDefaults(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{})
	assert.Equal(t, 30*time.Second, m.refreshInterval)
	assert.Equal(t, 15, m.maxVisible)
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"", "anything", true},
		{"alg", "Math/Algebra", true},
		{"ALG", "Math/Algebra", true},
		{"mag", "Math/Algebra", true},
		{"geo", "Math/Algebra", false},
		{"algx", "Math/Algebra", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.s, func(t *testing.T) {
			assert.Equal(t, tt.want, fuzzyMatch(tt.pattern, tt.s))
		})
	}
}

func TestDashboardLoadsSchedule(t *testing.T) {
	m, _ := newTestDashboard(t)
	require.Len(t, m.filtered, 2)

	view := m.View()
	assert.Contains(t, view, "Algebra")
	assert.Contains(t, view, "Geometry")
}

func TestDashboardFilterTyping(t *testing.T) {
	m, _ := newTestDashboard(t)

	model, _ := m.Update(keyMsg("geo"))
	m = model.(*DashboardModel)

	assert.Equal(t, "geo", m.filter)
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "Geometry", m.filtered[0].Topic.Name)
}

func TestDashboardFilterEscClears(t *testing.T) {
	m, _ := newTestDashboard(t)

	model, _ := m.Update(keyMsg("geo"))
	m = model.(*DashboardModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(*DashboardModel)

	assert.Empty(t, m.filter)
	assert.Len(t, m.filtered, 2)
}

func TestDashboardFilterBackspace(t *testing.T) {
	m, _ := newTestDashboard(t)

	model, _ := m.Update(keyMsg("geo"))
	m = model.(*DashboardModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = model.(*DashboardModel)

	assert.Equal(t, "ge", m.filter)
}

func TestDashboardCursorMovement(t *testing.T) {
	m, _ := newTestDashboard(t)
	assert.Equal(t, 0, m.cursor)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(*DashboardModel)
	assert.Equal(t, 1, m.cursor)

	// Cursor stops at the end of the list.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(*DashboardModel)
	assert.Equal(t, 1, m.cursor)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(*DashboardModel)
	assert.Equal(t, 0, m.cursor)
}

func TestDashboardEnterCompletesTopic(t *testing.T) {
	m, p := newTestDashboard(t)
	selected := m.filtered[0].Topic.UID

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(*DashboardModel)

	topic, err := p.Topic(selected)
	require.NoError(t, err)
	assert.Equal(t, 3, topic.FibNumber)
	assert.Contains(t, m.message, "Completed")
}

func TestDashboardQuit(t *testing.T) {
	m, _ := newTestDashboard(t)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDashboardEmptyView(t *testing.T) {
	p := planner.New(store.New(), fib.New())
	m := NewDashboardModel(DashboardConfig{Planner: p})
	m.width = 80
	m.loadSchedule()

	assert.Contains(t, m.View(), "Nothing scheduled.")
}
